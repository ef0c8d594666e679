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

// Package movelist provides a small helper type for collecting and
// ordering the moves produced by the move generator.
package movelist

import (
	"fmt"
	"strings"

	. "github.com/corvidchess/corvid/internal/types"
)

// MaxMoves is the largest number of legal moves possible in any reachable
// chess position, used to preallocate move lists without reallocation.
const MaxMoves = 218

// MoveList is a fixed-capacity, reusable buffer of moves. Unlike a plain
// []Move, callers are expected to Clear and reuse the same MoveList across
// node visits in the search tree to avoid per-node allocation.
type MoveList struct {
	moves []Move
	// scores holds a per-move ordering priority assigned by the caller
	// (typically internal/moveorder); len(scores) tracks len(moves) and is
	// only meaningful after Sort has something to sort.
	scores []int32
}

// New creates an empty MoveList with capacity for MaxMoves moves.
func New() *MoveList {
	return &MoveList{
		moves:  make([]Move, 0, MaxMoves),
		scores: make([]int32, 0, MaxMoves),
	}
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// Add appends a move with an initial ordering score of 0.
func (ml *MoveList) Add(m Move) {
	ml.moves = append(ml.moves, m)
	ml.scores = append(ml.scores, 0)
}

// At returns the move at index i. Panics if i is out of bounds.
func (ml *MoveList) At(i int) Move {
	return ml.moves[i]
}

// SetScore sets the ordering priority for the move at index i.
func (ml *MoveList) SetScore(i int, score int32) {
	ml.scores[i] = score
}

// Score returns the ordering priority previously assigned to the move at
// index i via SetScore.
func (ml *MoveList) Score(i int) int32 {
	return ml.scores[i]
}

// Clear empties the list while retaining its backing array.
func (ml *MoveList) Clear() {
	ml.moves = ml.moves[:0]
	ml.scores = ml.scores[:0]
}

// Slice returns the underlying move slice. The returned slice aliases
// ml's storage and is invalidated by the next Clear or Add.
func (ml *MoveList) Slice() []Move {
	return ml.moves
}

// Sort orders moves by descending score using a stable insertion sort;
// move lists are short (rarely more than a few dozen moves) and mostly
// already close to sorted after iterative deepening re-seeds the hash
// move, so insertion sort beats a general-purpose sort here.
func (ml *MoveList) Sort() {
	for i := 1; i < len(ml.moves); i++ {
		m, s := ml.moves[i], ml.scores[i]
		j := i
		for j > 0 && ml.scores[j-1] < s {
			ml.moves[j] = ml.moves[j-1]
			ml.scores[j] = ml.scores[j-1]
			j--
		}
		ml.moves[j] = m
		ml.scores[j] = s
	}
}

// String renders the list as a space separated sequence of long-algebraic
// moves, useful for logging and perft divide output.
func (ml *MoveList) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("MoveList: [%d] { ", len(ml.moves)))
	for i, m := range ml.moves {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}
