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

// Package moveorder assigns each candidate move an integer priority so
// the searcher visits the moves most likely to cause a cutoff first.
package moveorder

import (
	"github.com/corvidchess/corvid/internal/history"
	"github.com/corvidchess/corvid/internal/movelist"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// HashMoveBonus is added to a move that matches the transposition table's
// stored best move for the current position.
const HashMoveBonus int32 = 10000

// Order scores every move in ml and sorts it descending by priority.
// hashMove is the TT's stored best move for the position's Zobrist key
// (NullMove if none); hist supplies a supplemental tie-break score for
// quiet moves that isn't part of the base spec formula but rewards moves
// that have historically caused cutoffs elsewhere in the tree.
func Order(p *position.Position, ml *movelist.MoveList, hashMove Move, hist *history.Table) {
	us := p.Stm()
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		ml.SetScore(i, score(p, m, hashMove, us, hist))
	}
	ml.Sort()
}

func score(p *position.Position, m Move, hashMove Move, us Color, hist *history.Table) int32 {
	var s int32

	if m == hashMove {
		s += HashMoveBonus
	}

	if victim := p.PieceAt(m.To()); victim.IsValid() {
		attacker := p.PieceAt(m.From())
		s += int32(PieceTypeValue[victim.Type()]) - int32(PieceTypeValue[attacker.Type()])/10
	} else if m.IsEnPassant() {
		s += int32(PieceTypeValue[Pawn]) - int32(PieceTypeValue[Pawn])/10
	}

	if m.IsPromotion() {
		s += int32(PieceTypeValue[m.Promotion()])
	}

	if hist != nil {
		s += int32(hist.Score(us, m) / 1000)
	}

	return s
}
