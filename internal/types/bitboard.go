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

// Package types holds the bit-level primitives shared by every other
// package in the engine: bitboards, squares, files/ranks, directions,
// pieces/colours and the packed move representation. Nothing in this
// package depends on position, move generation or search.
package types

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned value, one bit per board square. Square i
// occupies bit i using the little-endian rank-file mapping: bit 0 is a1,
// bit 7 is h1, bit 56 is a8, bit 63 is h8 (file increases with bit index
// within a rank, rank increases every 8 bits). This enumeration is used
// consistently by the magic attack tables, move encoding and the Zobrist
// keys.
type Bitboard uint64

// BbZero is the empty bitboard.
const BbZero Bitboard = 0

// BbAll has every square set.
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// Has reports whether sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Push sets sq in b and returns the new value.
func (b Bitboard) Push(sq Square) Bitboard {
	return b | sq.Bb()
}

// Pop clears sq in b and returns the new value.
func (b Bitboard) Pop(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the index of the least significant set bit, or SqNone if b
// is empty. It does not mutate b.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb isolates the least significant set bit of *b, clears it and
// returns its square index. Returns SqNone (and leaves *b unchanged) if
// *b is already empty.
func PopLsb(b *Bitboard) Square {
	sq := b.Lsb()
	if sq == SqNone {
		return SqNone
	}
	*b &^= sq.Bb()
	return sq
}

// String renders the bitboard as an 8x8 grid, rank 8 at the top, for
// debugging and test failure output.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r)
			if b.Has(sq) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}

// GoString supports %#v for quick inspection in test failures.
func (b Bitboard) GoString() string {
	return fmt.Sprintf("Bitboard(0x%016X)", uint64(b))
}

var (
	sqBb   [64]Bitboard
	fileBb [8]Bitboard
	rankBb [8]Bitboard
)

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		sqBb[sq] = Bitboard(1) << uint(sq)
	}
	for f := FileA; f <= FileH; f++ {
		var bb Bitboard
		for r := Rank1; r <= Rank8; r++ {
			bb = bb.Push(SquareOf(f, r))
		}
		fileBb[f] = bb
	}
	for r := Rank1; r <= Rank8; r++ {
		var bb Bitboard
		for f := FileA; f <= FileH; f++ {
			bb = bb.Push(SquareOf(f, r))
		}
		rankBb[r] = bb
	}
}
