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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/position"
)

// Perft results from https://www.chessprogramming.org/Perft_Results.
// Depths are capped at what a single test run should comfortably finish
// in; deeper counts (startpos depth 6, Kiwipete depth 5, endgame depth 6,
// position 4 depth 5, position 5 depth 5) are recorded in comments for
// reference but not exercised here.
func TestPerftStartpos(t *testing.T) {
	var results = map[int]uint64{
		1: 20,
		2: 400,
		3: 8_902,
		4: 197_281,
		5: 4_865_609,
		// 6: 119_060_324
	}
	for depth, want := range results {
		p := position.Starting()
		assert.Equal(t, want, Perft(p, depth), "startpos depth %d", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"
	var results = map[int]uint64{
		1: 48,
		2: 2_039,
		3: 97_862,
		4: 4_085_603,
		// 5: 193_690_690
	}
	for depth, want := range results {
		p, err := position.FromFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, want, Perft(p, depth), "kiwipete depth %d", depth)
	}
}

func TestPerftEndgame(t *testing.T) {
	const fen = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -"
	var results = map[int]uint64{
		1: 14,
		2: 191,
		3: 2_812,
		4: 43_238,
		// 6: 11_030_083
	}
	for depth, want := range results {
		p, err := position.FromFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, want, Perft(p, depth), "endgame depth %d", depth)
	}
}

func TestPerftPosition4(t *testing.T) {
	const fen = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	var results = map[int]uint64{
		1: 6,
		2: 264,
		3: 9_467,
		4: 422_333,
		// 5: 15_833_292
	}
	for depth, want := range results {
		p, err := position.FromFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, want, Perft(p, depth), "position4 depth %d", depth)
	}
}

func TestPerftPosition5(t *testing.T) {
	const fen = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	var results = map[int]uint64{
		1: 44,
		2: 1_486,
		3: 62_379,
		4: 2_103_487,
		// 5: 89_941_194
	}
	for depth, want := range results {
		p, err := position.FromFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, want, Perft(p, depth), "position5 depth %d", depth)
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	p := position.Starting()
	entries, total := Divide(p, 3)
	assert.Equal(t, uint64(8_902), total)
	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	assert.Equal(t, total, sum)
	assert.Len(t, entries, 20)
}

func TestIsCheck(t *testing.T) {
	p, err := position.FromFen("6k1/5ppp/8/8/8/8/5PPP/4R1K1 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, IsCheck(p))

	p, err = position.FromFen("4r1k1/5ppp/8/8/8/8/5PPP/6K1 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, IsCheck(p))

	p, err = position.FromFen("6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, IsCheck(p), "white to move is never itself in check from its own rook")

	p, err = position.FromFen("4R1k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1")
	assert.NoError(t, err)
	assert.True(t, IsCheck(p), "rook on the back rank checks the black king")
}
