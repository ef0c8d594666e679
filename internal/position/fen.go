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
	"fmt"
	"strconv"
	"strings"

	. "github.com/corvidchess/corvid/internal/types"
)

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceFromFenChar = map[byte]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

var fenCharFromPiece = [PieceLength]byte{
	WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B', WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
	BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b', BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
}

// FenError reports a malformed FEN string.
type FenError struct {
	Fen string
	Why string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("invalid fen %q: %s", e.Fen, e.Why)
}

// FromFen parses a standard FEN string into a new Position: piece
// placement, active colour, castling availability, en-passant target,
// halfmove clock and fullmove number. The halfmove clock and fullmove
// number fields may be "-" or omitted entirely, in which case they
// default to 0 and 1 respectively.
func FromFen(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		log.Errorf("invalid fen: %q", fen)
		return nil, &FenError{Fen: fen, Why: "expected at least 4 space separated fields"}
	}

	p := &Position{}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, &FenError{Fen: fen, Why: "piece placement must have 8 ranks"}
	}
	kings := [2]int{}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			piece, ok := pieceFromFenChar[ch]
			if !ok {
				return nil, &FenError{Fen: fen, Why: fmt.Sprintf("unexpected piece placement character %q", ch)}
			}
			if f > FileH {
				return nil, &FenError{Fen: fen, Why: "rank too long"}
			}
			sq := SquareOf(f, r)
			p.putPiece(piece, sq)
			if piece.Type() == King {
				kings[piece.Color()]++
			}
			f++
		}
		if f != FileNone {
			return nil, &FenError{Fen: fen, Why: "rank does not cover all 8 files"}
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return nil, &FenError{Fen: fen, Why: "each colour must have exactly one king"}
	}

	switch fields[1] {
	case "w":
		p.stm = White
	case "b":
		p.stm = Black
	default:
		return nil, &FenError{Fen: fen, Why: "active colour must be 'w' or 'b'"}
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				p.castle[KingSide][White] = true
			case 'Q':
				p.castle[QueenSide][White] = true
			case 'k':
				p.castle[KingSide][Black] = true
			case 'q':
				p.castle[QueenSide][Black] = true
			default:
				return nil, &FenError{Fen: fen, Why: "castling availability must be a KQkq subset or '-'"}
			}
		}
	}

	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return nil, &FenError{Fen: fen, Why: "en-passant target must be an algebraic square or '-'"}
		}
		p.epTarget = sq.Bb()
	}

	p.halfmoveClock = 0
	if len(fields) > 4 && fields[4] != "-" {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, &FenError{Fen: fen, Why: "halfmove clock must be an integer or '-'"}
		}
		p.halfmoveClock = n
	}

	p.fullmoveNum = 1
	if len(fields) > 5 && fields[5] != "-" {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, &FenError{Fen: fen, Why: "fullmove number must be an integer or '-'"}
		}
		p.fullmoveNum = n
	}

	p.rebuildDerived()
	p.zobrist = p.recomputeZobrist()
	p.history = make([]StateSnapshot, 0, 64)
	return p, nil
}

// Fen renders the position back into FEN. Not required by spec.md, but
// cheap to derive from fields already on Position and useful for
// logging/diagnostics; the original engine this spec was distilled from
// provides the same round trip.
func (p *Position) Fen() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		r := Rank(7 - i)
		empty := 0
		for f := FileA; f <= FileH; f++ {
			piece := p.board[SquareOf(f, r)]
			if !piece.IsValid() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(fenCharFromPiece[piece])
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.stm.String())

	sb.WriteByte(' ')
	castling := ""
	if p.castle[KingSide][White] {
		castling += "K"
	}
	if p.castle[QueenSide][White] {
		castling += "Q"
	}
	if p.castle[KingSide][Black] {
		castling += "k"
	}
	if p.castle[QueenSide][Black] {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)

	sb.WriteByte(' ')
	sb.WriteString(p.EpTarget().String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNum))

	return sb.String()
}

func (p *Position) String() string {
	return p.Fen()
}
