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
	"github.com/corvidchess/corvid/internal/types"
)

// Bound records what kind of value a stored search score represents,
// mirroring the usual alpha-beta bound vocabulary.
type Bound uint8

const (
	// BoundNone marks an empty slot.
	BoundNone Bound = iota
	// BoundExact means Value is the position's true minimax value.
	BoundExact
	// BoundLower means the true value is at least Value (a beta cutoff).
	BoundLower
	// BoundUpper means the true value is at most Value (failed to raise alpha).
	BoundUpper
)

// Entry is one transposition table slot, sized to stay cache-friendly:
// a 64-bit Zobrist key plus a compact packed payload.
type Entry struct {
	Key   uint64
	Move  types.Move
	Value types.Value
	Depth int8
	Bound Bound
	// QSearch marks an entry stored from quiescence search; a
	// quiescence-tainted entry must not answer a non-quiescence probe,
	// since a stand-pat value assumes the tree beneath depth 0 stopped
	// early.
	QSearch bool
}

func (e *Entry) isEmpty() bool {
	return e.Bound == BoundNone
}
