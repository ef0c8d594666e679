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
	. "github.com/corvidchess/corvid/internal/types"
)

// zobrist random generator: xorshift64star, the same pseudo-random
// number generator used to search for magic bitboard constants
// (public-domain algorithm by Sebastiano Vigna). A fixed seed makes the
// key set deterministic across runs, which is what the Zobrist-uniqueness
// property test in the engine's test suite relies on.
type zobristRand struct {
	s uint64
}

func newZobristRand(seed uint64) *zobristRand {
	if seed == 0 {
		seed = 1
	}
	return &zobristRand{s: seed}
}

func (r *zobristRand) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

var (
	zPiece  [2][6][64]uint64
	zStm    uint64
	zCastle [CastleSideLength][2]uint64
	zEpFile [8]uint64
)

func init() {
	r := newZobristRand(0x9E3779B97F4A7C15)
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := SqA1; sq <= SqH8; sq++ {
				zPiece[c][pt][sq] = r.rand64()
			}
		}
	}
	zStm = r.rand64()
	for side := KingSide; side < CastleSideLength; side++ {
		zCastle[side][White] = r.rand64()
		zCastle[side][Black] = r.rand64()
	}
	for f := 0; f < 8; f++ {
		zEpFile[f] = r.rand64()
	}
}
