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

package moveorder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/history"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/movelist"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

func TestOrderPutsHashMoveFirst(t *testing.T) {
	p := position.Starting()
	ml := movelist.New()
	movegen.Generate(p, ml)

	hashMove := NewMove(SqG1, SqF3, MoveNormal)
	Order(p, ml, hashMove, nil)

	assert.Equal(t, hashMove, ml.At(0))
}

func TestOrderPrefersCapturesOverQuietMoves(t *testing.T) {
	p, err := position.FromFen("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	ml := movelist.New()
	movegen.Generate(p, ml)

	Order(p, ml, NullMove, nil)

	capture := NewMove(SqE4, SqD5, MoveNormal)
	assert.Equal(t, capture, ml.At(0))
}

func TestOrderHistoryBreaksTiesAmongQuietMoves(t *testing.T) {
	p := position.Starting()
	ml := movelist.New()
	movegen.Generate(p, ml)

	hist := history.New()
	boosted := NewMove(SqB1, SqC3, MoveNormal)
	// depth 32 gives a weight of 32*32 = 1024, which Order scales down by
	// 1000 to a score of 1 -- enough to lift it above the unscored moves.
	hist.Bonus(White, boosted, 32)

	Order(p, ml, NullMove, hist)

	assert.Equal(t, boosted, ml.At(0))
}
