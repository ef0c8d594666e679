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

package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestNewRoundsDownToPowerOfTwo(t *testing.T) {
	table := New(1)
	assert.Greater(t, table.Len(), 0)
	assert.Equal(t, table.Len()&(table.Len()-1), 0, "slot count must be a power of two")
}

func TestStoreAndProbeExact(t *testing.T) {
	table := New(1)
	key := uint64(0xDEADBEEF)
	move := NewMove(SqE2, SqE4, MoveNormal)
	table.Store(key, move, 150, 4, BoundExact, false)

	v, ok := table.Probe(key, 3, -1000, 1000, false)
	assert.True(t, ok)
	assert.Equal(t, Value(150), v)
}

func TestProbeRejectsShallowerStoredDepth(t *testing.T) {
	table := New(1)
	key := uint64(42)
	table.Store(key, NullMove, 10, 2, BoundExact, false)
	_, ok := table.Probe(key, 5, -1000, 1000, false)
	assert.False(t, ok)
}

func TestProbeLowerBoundOnlyUsableAboveBeta(t *testing.T) {
	table := New(1)
	key := uint64(7)
	table.Store(key, NullMove, 50, 4, BoundLower, false)

	_, ok := table.Probe(key, 4, -1000, 40, false)
	assert.True(t, ok, "lower bound >= beta should be usable")

	_, ok = table.Probe(key, 4, -1000, 60, false)
	assert.False(t, ok, "lower bound < beta is not usable")
}

func TestProbeUpperBoundOnlyUsableBelowAlpha(t *testing.T) {
	table := New(1)
	key := uint64(8)
	table.Store(key, NullMove, -50, 4, BoundUpper, false)

	_, ok := table.Probe(key, 4, -40, 1000, false)
	assert.True(t, ok, "upper bound <= alpha should be usable")

	_, ok = table.Probe(key, 4, -60, 1000, false)
	assert.False(t, ok, "upper bound > alpha is not usable")
}

func TestQuiescenceEntryDoesNotAnswerNonQuiescenceProbe(t *testing.T) {
	table := New(1)
	key := uint64(99)
	table.Store(key, NullMove, 10, 0, BoundExact, true)

	_, ok := table.Probe(key, 0, -1000, 1000, false)
	assert.False(t, ok)

	_, ok = table.Probe(key, 0, -1000, 1000, true)
	assert.True(t, ok)
}

func TestClearEmptiesTable(t *testing.T) {
	table := New(1)
	key := uint64(123)
	table.Store(key, NullMove, 1, 1, BoundExact, false)
	table.Clear()
	_, ok := table.Probe(key, 1, -1000, 1000, false)
	assert.False(t, ok)
}

func TestStoreOverwritesOnCollision(t *testing.T) {
	table := New(1)
	// Different keys that hash to the same slot collide and always-replace.
	slotMask := uint64(table.Len() - 1)
	keyA := uint64(5)
	keyB := keyA + uint64(table.Len()) // same low bits, different key
	assert.Equal(t, keyA&slotMask, keyB&slotMask)

	table.Store(keyA, NullMove, 1, 1, BoundExact, false)
	table.Store(keyB, NullMove, 2, 1, BoundExact, false)

	_, ok := table.Probe(keyA, 1, -1000, 1000, false)
	assert.False(t, ok, "keyA's slot was overwritten by keyB")
	v, ok := table.Probe(keyB, 1, -1000, 1000, false)
	assert.True(t, ok)
	assert.Equal(t, Value(2), v)
}
