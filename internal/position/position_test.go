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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestStartingPositionLayout(t *testing.T) {
	p := Starting()
	assert.Equal(t, SqA1.Bb()|SqH1.Bb(), p.Pieces(White, Rook))
	assert.Equal(t, SqA8.Bb()|SqH8.Bb(), p.Pieces(Black, Rook))
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, White, p.Stm())
	assert.Equal(t, SqNone, p.EpTarget())
	for _, side := range []CastleSide{KingSide, QueenSide} {
		assert.True(t, p.CanCastle(side, White))
		assert.True(t, p.CanCastle(side, Black))
	}
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
	assert.Equal(t, p.recomputeZobrist(), p.Zobrist())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/8/8/8/8/8/8/K6k w - - 0 1",
	}
	for _, fen := range fens {
		p, err := FromFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestFromFenRejectsMalformedInput(t *testing.T) {
	_, err := FromFen("not a fen")
	assert.Error(t, err)

	_, err = FromFen("8/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err, "a position with no kings must be rejected")

	_, err = FromFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.Error(t, err, "an active colour other than w/b must be rejected")
}

// TestMakeUnmakeRestoresEverything walks every move pseudoLegalProbe
// yields, one ply deep, from a handful of tactically dense positions and
// checks that Unmake
// restores every field Make touched, bit for bit -- not just the board,
// but castling rights, en-passant target, halfmove clock, the Zobrist
// key and the history stack depth.
func TestMakeUnmakeRestoresEverything(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/4Pp2/8/8/4K3 b - e3 0 1",
	}
	for _, fen := range fens {
		p, err := FromFen(fen)
		assert.NoError(t, err)

		before := snapshot(p)
		for _, m := range pseudoLegalProbe(p) {
			depth := p.HistoryDepth()
			if err := p.Make(m); err != nil {
				continue
			}
			assert.Equal(t, depth+1, p.HistoryDepth())
			p.Unmake()
			assert.Equal(t, depth, p.HistoryDepth())
			assert.Equal(t, before, snapshot(p), "Unmake after %s on %q did not restore state", m, fen)
		}
	}
}

// TestZobristMatchesRecomputeAfterMakeUnmake confirms the incrementally
// maintained key never drifts from a from-scratch recomputation, both
// immediately after Make and again after Unmake.
func TestZobristMatchesRecomputeAfterMakeUnmake(t *testing.T) {
	p := Starting()
	for _, m := range pseudoLegalProbe(p) {
		if err := p.Make(m); err != nil {
			continue
		}
		assert.Equal(t, p.recomputeZobrist(), p.Zobrist())
		p.Unmake()
		assert.Equal(t, p.recomputeZobrist(), p.Zobrist())
	}
}

type stateSummary struct {
	board         [64]Piece
	stm           Color
	epTarget      Square
	castle        [CastleSideLength][2]bool
	halfmoveClock int
	fullmoveNum   int
	zobrist       uint64
}

func snapshot(p *Position) stateSummary {
	return stateSummary{
		board:         p.board,
		stm:           p.stm,
		epTarget:      p.EpTarget(),
		castle:        p.castle,
		halfmoveClock: p.halfmoveClock,
		fullmoveNum:   p.fullmoveNum,
		zobrist:       p.zobrist,
	}
}

// isCastleDestination reports whether from/to is one of the four
// recognized king castle moves, so the probe below never hands Make a
// castle-flagged move with no matching rook to relocate.
func isCastleDestination(us Color, from, to Square) bool {
	if us == White && from == SqE1 {
		return to == SqG1 || to == SqC1
	}
	if us == Black && from == SqE8 {
		return to == SqG8 || to == SqC8
	}
	return false
}

// hasCornerRook reports whether the rook a castle toward `to` would
// relocate is actually still sitting on its corner square, so the probe
// never hands Make a castle move with nothing to move the rook from.
func hasCornerRook(p *Position, from, to Square) bool {
	rFrom, _ := castleRookSquares(to)
	rook := p.PieceAt(rFrom)
	return rook.IsValid() && rook.Type() == Rook && rook.Color() == p.PieceAt(from).Color()
}

// hasEnPassantVictim reports whether from is actually a pawn diagonally
// adjacent to the en-passant target and the captured square holds an
// enemy pawn, so the probe never hands Make an en-passant move with
// nothing (or the wrong piece) to remove.
func hasEnPassantVictim(p *Position, from, to Square) bool {
	if absSquareDiff(from, to) != 7 && absSquareDiff(from, to) != 9 {
		return false
	}
	if from.RankOf() == to.RankOf() {
		return false
	}
	capSq := to.To(South)
	if p.Stm() == Black {
		capSq = to.To(North)
	}
	victim := p.PieceAt(capSq)
	return victim.IsValid() && victim.Type() == Pawn && victim.Color() != p.Stm()
}

// pseudoLegalProbe returns a normal move for every from/to pair of the
// side to move that doesn't land on its own piece, plus queen promotions,
// en-passant and castle moves where the board allows them, so every
// Make/Unmake branch (normal, capture, en-passant, promotion, castle) is
// exercised without
// depending on the movegen package, keeping this file a pure unit test
// of Position's own bookkeeping.
func pseudoLegalProbe(p *Position) []Move {
	var moves []Move
	for from := SqA1; from < SqNone; from++ {
		piece := p.PieceAt(from)
		if !piece.IsValid() || piece.Color() != p.Stm() {
			continue
		}
		for to := SqA1; to < SqNone; to++ {
			if from == to {
				continue
			}
			target := p.PieceAt(to)
			if target.IsValid() && target.Color() == p.Stm() {
				continue
			}
			moves = append(moves, NewMove(from, to, MoveNormal))
			if piece.Type() == Pawn && (to.RankOf() == Rank8 || to.RankOf() == Rank1) {
				moves = append(moves, NewPromotionMove(from, to, Queen))
			}
			if piece.Type() == Pawn && to == p.EpTarget() && hasEnPassantVictim(p, from, to) {
				moves = append(moves, NewMove(from, to, MoveEnPassant))
			}
			if piece.Type() == King && isCastleDestination(p.Stm(), from, to) && !target.IsValid() && hasCornerRook(p, from, to) {
				moves = append(moves, NewMove(from, to, MoveCastle))
			}
		}
	}
	return moves
}
