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

// Package evaluator scores a position from white's point of view.
package evaluator

import (
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// Evaluate returns a material-only score: the sum of white's piece values
// minus black's, using the standard pawn/knight/bishop/rook/queen/king
// point values. Positive favours white. Evaluate is a pure function of p
// and never mutates it.
func Evaluate(p *position.Position) Value {
	var score Value
	for pt := Pawn; pt <= King; pt++ {
		v := PieceTypeValue[pt]
		score += v * Value(p.Pieces(White, pt).PopCount())
		score -= v * Value(p.Pieces(Black, pt).PopCount())
	}
	return score
}

// Relative returns Evaluate from the point of view of c, negating the
// white-relative score for black -- the form the negamax searcher needs
// at its leaves.
func Relative(p *position.Position, c Color) Value {
	score := Evaluate(p)
	if c == Black {
		return -score
	}
	return score
}
