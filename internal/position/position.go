/*
 * Corvid - a chess engine core in Go
 *
 * MIT License
 *
 * Copyright (c) 2024-2026 The Corvid Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package position implements the canonical chess game state: piece
// bitboards, castling rights, en-passant target, side to move, the
// incrementally maintained Zobrist hash, and the stack-disciplined
// make/unmake pair that mutates it. Nothing here generates moves; the
// movegen package builds on top of this.
package position

import (
	"fmt"

	"github.com/corvidchess/corvid/internal/assert"
	"github.com/corvidchess/corvid/internal/logging"
	. "github.com/corvidchess/corvid/internal/types"
)

var log = logging.GetLog("position")

// StateSnapshot captures the fields a make() call changes but that
// cannot be reconstructed from the move alone, so unmake() can restore
// them exactly.
type StateSnapshot struct {
	EpTarget      Bitboard
	Castle        [CastleSideLength][2]bool
	HalfmoveClock int
	Zobrist       uint64
	Captured      PieceType
	Move          Move
}

// Position is the canonical, mutable chess game state.
type Position struct {
	pieces [2][6]Bitboard
	occ    [2]Bitboard
	occAll Bitboard
	board  [64]Piece

	epTarget      Bitboard
	castle        [CastleSideLength][2]bool
	stm           Color
	halfmoveClock int
	fullmoveNum   int
	zobrist       uint64

	history []StateSnapshot
}

// InvalidMoveError reports an attempt to Make a move whose from-square is
// empty or not owned by the side to move -- a programmer error in any
// caller that only ever makes moves produced by the move generator.
type InvalidMoveError struct {
	Move Move
	Why  string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %s: %s", e.Move, e.Why)
}

// Starting returns a Position set up at the standard chess starting
// position.
func Starting() *Position {
	p, err := FromFen(StartFen)
	if err != nil {
		panic("starting position FEN must always parse: " + err.Error())
	}
	return p
}

// Stm returns the side to move.
func (p *Position) Stm() Color {
	return p.stm
}

// Pieces returns the bitboard of pieces of type pt belonging to c.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard {
	return p.pieces[c][pt]
}

// Occupied returns the union of all pieces belonging to c.
func (p *Position) Occupied(c Color) Bitboard {
	return p.occ[c]
}

// OccupiedAll returns the union of all occupied squares.
func (p *Position) OccupiedAll() Bitboard {
	return p.occAll
}

// PieceAt returns the piece occupying sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// EpTarget returns the square an en-passant capture may land on, or
// SqNone if none is available.
func (p *Position) EpTarget() Square {
	return p.epTarget.Lsb()
}

// CanCastle reports whether c retains the castling right on side.
func (p *Position) CanCastle(side CastleSide, c Color) bool {
	return p.castle[side][c]
}

// HalfmoveClock returns the number of plies since the last pawn move or
// capture.
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the current full move number.
func (p *Position) FullmoveNumber() int {
	return p.fullmoveNum
}

// Zobrist returns the incrementally maintained 64-bit position hash.
func (p *Position) Zobrist() uint64 {
	return p.zobrist
}

// HistoryDepth returns the number of entries on the make/unmake stack;
// exposed mainly so tests can confirm make/unmake leaves it unchanged.
func (p *Position) HistoryDepth() int {
	return len(p.history)
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieces[c][King].Lsb()
}

// IsFiftyMoveDraw reports whether the fifty-move rule has been reached.
// The core tracks HalfmoveClock as required but, per spec, does not
// enforce this on its own -- callers opt in by checking it before
// evaluation.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.halfmoveClock >= 100
}

var castleRookStart = [2][2]Square{
	{SqH1, SqA1}, // White: king-side rook, queen-side rook
	{SqH8, SqA8}, // Black
}

// castleRookSquares derives the rook's from/to squares for a castle move
// given only the king's destination square.
func castleRookSquares(to Square) (from, dest Square) {
	rank := to.RankOf()
	if to.FileOf() == FileG {
		return SquareOf(FileH, rank), SquareOf(FileF, rank)
	}
	return SquareOf(FileA, rank), SquareOf(FileD, rank)
}

// Make applies m to the position. The caller must only ever pass a move
// produced (or validated) by the move generator; Make does not itself
// re-verify legality, only that the basic preconditions of a move hold.
func (p *Position) Make(m Move) error {
	from, to := m.From(), m.To()
	moving := p.board[from]
	if !moving.IsValid() || moving.Color() != p.stm {
		log.Errorf("invalid move %s: from-square empty or not owned by side to move", m)
		return &InvalidMoveError{Move: m, Why: "from-square is empty or not owned by the side to move"}
	}

	snap := StateSnapshot{
		EpTarget:      p.epTarget,
		Castle:        p.castle,
		HalfmoveClock: p.halfmoveClock,
		Zobrist:       p.zobrist,
		Captured:      PtNone,
		Move:          m,
	}

	us, them := p.stm, p.stm.Opp()
	movingType := moving.Type()
	isPawnMove := movingType == Pawn
	isCapture := false

	if target := p.board[to]; target.IsValid() && m.Flag() != MoveCastle {
		snap.Captured = target.Type()
		p.removePiece(to)
		isCapture = true
	}

	switch m.Flag() {
	case MoveNormal:
		p.movePiece(moving, from, to)
	case MoveEnPassant:
		p.movePiece(moving, from, to)
		capSq := to.To(South)
		if us == Black {
			capSq = to.To(North)
		}
		snap.Captured = Pawn
		p.removePiece(capSq)
		isCapture = true
	case MovePromotion:
		p.removePiece(from)
		p.putPiece(MakePiece(us, m.Promotion()), to)
	case MoveCastle:
		p.movePiece(moving, from, to)
		rFrom, rTo := castleRookSquares(to)
		rook := p.board[rFrom]
		p.movePiece(rook, rFrom, rTo)
	}

	// castle rights bookkeeping: a king move clears both of its own
	// rights; a rook move or capture on a starting rook square clears
	// that one right.
	if movingType == King {
		p.setCastle(KingSide, us, false)
		p.setCastle(QueenSide, us, false)
	}
	if from == castleRookStart[us][KingSide] {
		p.setCastle(KingSide, us, false)
	}
	if from == castleRookStart[us][QueenSide] {
		p.setCastle(QueenSide, us, false)
	}
	if to == castleRookStart[them][KingSide] {
		p.setCastle(KingSide, them, false)
	}
	if to == castleRookStart[them][QueenSide] {
		p.setCastle(QueenSide, them, false)
	}

	p.clearEpTarget()
	if isPawnMove && absSquareDiff(from, to) == 16 {
		epSq := from.To(North)
		if us == Black {
			epSq = from.To(South)
		}
		p.setEpTarget(epSq)
	}

	p.zobrist ^= zStm
	p.stm = them
	if p.stm == White {
		p.fullmoveNum++
	}
	if isPawnMove || isCapture {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	p.history = append(p.history, snap)
	return nil
}

// Unmake reverts the most recent Make call. Calling Unmake without a
// matching prior Make is a programmer error; stack discipline is the
// caller's responsibility, exactly as during search.
func (p *Position) Unmake() {
	if assert.DEBUG {
		assert.Assert(len(p.history) > 0, "Unmake called with empty history")
	}
	n := len(p.history) - 1
	snap := p.history[n]
	p.history = p.history[:n]

	them := p.stm
	us := them.Opp()
	p.stm = us
	if them == White {
		p.fullmoveNum--
	}

	m := snap.Move
	from, to := m.From(), m.To()

	switch m.Flag() {
	case MoveNormal:
		moved := p.board[to]
		p.movePiece(moved, to, from)
	case MoveEnPassant:
		moved := p.board[to]
		p.movePiece(moved, to, from)
		capSq := to.To(South)
		if us == Black {
			capSq = to.To(North)
		}
		p.putPiece(MakePiece(them, Pawn), capSq)
	case MovePromotion:
		p.removePiece(to)
		p.putPiece(MakePiece(us, Pawn), from)
	case MoveCastle:
		king := p.board[to]
		p.movePiece(king, to, from)
		rFrom, rTo := castleRookSquares(to)
		rook := p.board[rTo]
		p.movePiece(rook, rTo, rFrom)
	}

	if snap.Captured != PtNone && m.Flag() != MoveEnPassant {
		p.putPiece(MakePiece(them, snap.Captured), to)
	}

	p.epTarget = snap.EpTarget
	p.castle = snap.Castle
	p.halfmoveClock = snap.HalfmoveClock
	p.zobrist = snap.Zobrist
}

func absSquareDiff(a, b Square) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func (p *Position) setCastle(side CastleSide, c Color, v bool) {
	if p.castle[side][c] == v {
		return
	}
	p.castle[side][c] = v
	p.zobrist ^= zCastle[side][c]
}

func (p *Position) clearEpTarget() {
	if sq := p.epTarget.Lsb(); sq != SqNone {
		p.zobrist ^= zEpFile[sq.FileOf()]
	}
	p.epTarget = BbZero
}

func (p *Position) setEpTarget(sq Square) {
	p.epTarget = sq.Bb()
	p.zobrist ^= zEpFile[sq.FileOf()]
}

// putPiece places piece on sq, updating bitboards, the mailbox and the
// Zobrist key. sq must currently be empty.
func (p *Position) putPiece(piece Piece, sq Square) {
	c, pt := piece.Color(), piece.Type()
	p.pieces[c][pt] = p.pieces[c][pt].Push(sq)
	p.occ[c] = p.occ[c].Push(sq)
	p.occAll = p.occAll.Push(sq)
	p.board[sq] = piece
	p.zobrist ^= zPiece[c][pt][sq]
}

// removePiece clears whatever piece sits on sq and returns it.
func (p *Position) removePiece(sq Square) Piece {
	piece := p.board[sq]
	if !piece.IsValid() {
		return PieceNone
	}
	c, pt := piece.Color(), piece.Type()
	p.pieces[c][pt] = p.pieces[c][pt].Pop(sq)
	p.occ[c] = p.occ[c].Pop(sq)
	p.occAll = p.occAll.Pop(sq)
	p.board[sq] = PieceNone
	p.zobrist ^= zPiece[c][pt][sq]
	return piece
}

// movePiece relocates piece from `from` to `to`, which must be empty.
func (p *Position) movePiece(piece Piece, from, to Square) {
	c, pt := piece.Color(), piece.Type()
	p.pieces[c][pt] = p.pieces[c][pt].Pop(from).Push(to)
	p.occ[c] = p.occ[c].Pop(from).Push(to)
	p.occAll = p.occAll.Pop(from).Push(to)
	p.board[from] = PieceNone
	p.board[to] = piece
	p.zobrist ^= zPiece[c][pt][from]
	p.zobrist ^= zPiece[c][pt][to]
}

// recomputeZobrist rebuilds the Zobrist key from scratch; used by
// FromFen and by the Zobrist-uniqueness property test, which compares an
// incrementally maintained key against one computed fresh.
func (p *Position) recomputeZobrist() uint64 {
	var z uint64
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.pieces[c][pt]
			for bb != BbZero {
				sq := PopLsb(&bb)
				z ^= zPiece[c][pt][sq]
			}
		}
	}
	if p.stm == Black {
		z ^= zStm
	}
	for side := KingSide; side < CastleSideLength; side++ {
		if p.castle[side][White] {
			z ^= zCastle[side][White]
		}
		if p.castle[side][Black] {
			z ^= zCastle[side][Black]
		}
	}
	if sq := p.epTarget.Lsb(); sq != SqNone {
		z ^= zEpFile[sq.FileOf()]
	}
	return z
}

func (p *Position) rebuildDerived() {
	p.occ[White] = BbZero
	p.occ[Black] = BbZero
	for pt := Pawn; pt <= King; pt++ {
		p.occ[White] |= p.pieces[White][pt]
		p.occ[Black] |= p.pieces[Black][pt]
	}
	p.occAll = p.occ[White] | p.occ[Black]
}
