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

package types

import "fmt"

// Color is the side to move or the owner of a piece.
type Color int8

const (
	White Color = iota
	Black
	ColorNone
)

// Opp returns the opposing colour.
func (c Color) Opp() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// PieceType is one of the six piece kinds, colour-agnostic.
type PieceType int8

//goland:noinspection GoUnusedConst
const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
)

// PieceTypeLength is the number of valid piece types.
const PieceTypeLength = int(PtNone)

// Value is a centipawn evaluation or search score.
type Value int32

// Material values as specified: pawn 100, knight 300, bishop 350, rook
// 500, queen 900, king 0 (the king's material value never enters the sum
// since both sides always have exactly one).
var PieceTypeValue = [6]Value{100, 300, 350, 500, 900, 0}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "-"
	}
}

// Piece is a (colour, type) pair packed into a single small integer so it
// can index 12-wide arrays: WhitePawn=0 .. WhiteKing=5, BlackPawn=6 ..
// BlackKing=11, PieceNone=12.
type Piece int8

//goland:noinspection GoUnusedConst
const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceNone
)

// PieceLength is the number of valid (colour, type) pieces.
const PieceLength = int(PieceNone)

// MakePiece packs a colour and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if !c.IsValid() || pt > King {
		return PieceNone
	}
	return Piece(int8(c)*6 + int8(pt))
}

// Color returns the colour of p.
func (p Piece) Color() Color {
	if p >= BlackPawn {
		return Black
	}
	return White
}

// Type returns the piece type of p.
func (p Piece) Type() PieceType {
	if p == PieceNone {
		return PtNone
	}
	return PieceType(int8(p) % 6)
}

// IsValid reports whether p is a real piece.
func (p Piece) IsValid() bool {
	return p >= WhitePawn && p < PieceNone
}

func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	s := p.Type().String()
	if p.Color() == White {
		return fmt.Sprintf("%c", s[0]-('a'-'A'))
	}
	return s
}
