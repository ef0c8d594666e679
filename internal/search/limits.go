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

import "time"

// Limits controls how long and how deep a single search may run.
type Limits struct {
	// MoveTime is the wall-clock budget for the whole iterative-deepening
	// search. With a zero budget the deadline has already passed, so
	// depth 1 does not complete and BestMove returns the first move after
	// ordering instead; it never returns NullMove when a legal move exists.
	MoveTime time.Duration

	// Depth caps the deepest iteration attempted, regardless of how much
	// of MoveTime remains. Zero means no depth cap.
	Depth int

	// UseQuiescence enables the quiescence search extension at leaf
	// nodes of the main tree.
	UseQuiescence bool
}

// NewLimits creates Limits with the given move-time budget and
// quiescence toggle and no depth cap.
func NewLimits(moveTime time.Duration, useQuiescence bool) Limits {
	return Limits{MoveTime: moveTime, UseQuiescence: useQuiescence}
}
