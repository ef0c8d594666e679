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

package search

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/movelist"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestBestMovePawnUp(t *testing.T) {
	p, err := position.FromFen("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	assert.NoError(t, err)

	s := New(200*time.Millisecond, true, 4)
	s.limits.Depth = 2
	move := s.BestMove(p)

	assert.NotEqual(t, NullMove, move)
	assert.GreaterOrEqual(t, s.Stats().BestValue, Value(100))
}

func TestBestMoveRookUp(t *testing.T) {
	p, err := position.FromFen("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	assert.NoError(t, err)

	s := New(200*time.Millisecond, true, 4)
	s.limits.Depth = 2
	move := s.BestMove(p)

	assert.NotEqual(t, NullMove, move)
	assert.GreaterOrEqual(t, s.Stats().BestValue, Value(500))
}

func TestBestMoveFindsMateInOne(t *testing.T) {
	p, err := position.FromFen("6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - 0 1")
	assert.NoError(t, err)

	s := New(200*time.Millisecond, true, 4)
	s.limits.Depth = 2
	move := s.BestMove(p)

	assert.Equal(t, NewMove(SqE1, SqE8, MoveNormal), move)
	assert.GreaterOrEqual(t, s.Stats().BestValue, CheckmateScore-2)
}

func TestZobristUniquenessAcrossReachablePositions(t *testing.T) {
	seen := map[uint64]string{}
	// The key covers placement, side to move, castling and en passant but
	// not the move clocks, so only the first four FEN fields identify a
	// position here.
	posFen := func(p *position.Position) string {
		return strings.Join(strings.Fields(p.Fen())[:4], " ")
	}
	var walk func(p *position.Position, depth int)
	walk = func(p *position.Position, depth int) {
		fresh, err := position.FromFen(p.Fen())
		assert.NoError(t, err)
		assert.Equal(t, p.Zobrist(), fresh.Zobrist())

		if depth == 0 {
			return
		}
		ml := movelist.New()
		movegen.Generate(p, ml)
		for _, m := range ml.Slice() {
			assert.NoError(t, p.Make(m))
			if prevFen, ok := seen[p.Zobrist()]; ok {
				assert.Equal(t, prevFen, posFen(p), "zobrist collision between distinct positions")
			} else {
				seen[p.Zobrist()] = posFen(p)
			}
			walk(p, depth-1)
			p.Unmake()
		}
	}
	walk(position.Starting(), 3)
}

func TestWarmTTAgreesWithColdTT(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	p1, err := position.FromFen(fen)
	assert.NoError(t, err)
	s1 := New(150*time.Millisecond, true, 4)
	s1.limits.Depth = 3
	move1 := s1.BestMove(p1)
	value1 := s1.Stats().BestValue

	p2, err := position.FromFen(fen)
	assert.NoError(t, err)
	s2 := New(150*time.Millisecond, true, 4)
	s2.limits.Depth = 3
	_ = s2.BestMove(p2) // warm the TT on the same position first
	move2 := s2.BestMove(p2)
	value2 := s2.Stats().BestValue

	assert.NotEqual(t, NullMove, move1)
	assert.NotEqual(t, NullMove, move2)
	assert.Equal(t, value1, value2)
}
