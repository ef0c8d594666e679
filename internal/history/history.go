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

// Package history tracks move-ordering statistics accumulated across a
// search tree: how often a quiet move from one square to another has
// caused a beta cutoff, supplementing MVV/LVA and hash-move priority
// with an adaptive signal for the remaining quiet moves.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// Table accumulates a per-colour, per-from/to-square cutoff counter.
// Indexed by the mover's colour so white and black history don't bleed
// into each other across the tree.
type Table struct {
	counts [2][64][64]int64
}

// New creates an empty history table.
func New() *Table {
	return &Table{}
}

// Bonus adds depth*depth to the counter for a quiet move that caused a
// beta cutoff at the given depth -- deeper cutoffs are weighted more
// heavily since they represent a stronger signal.
func (h *Table) Bonus(c Color, m Move, depth int8) {
	d := int64(depth)
	h.counts[c][m.From()][m.To()] += d * d
}

// Score returns the accumulated cutoff weight for a quiet move, used as a
// tie-breaking move-ordering priority below captures/promotions/hash
// moves but above unscored quiet moves.
func (h *Table) Score(c Color, m Move) int64 {
	return h.counts[c][m.From()][m.To()]
}

// Clear resets every counter; called between searches so stale history
// from an unrelated position doesn't bias ordering.
func (h *Table) Clear() {
	h.counts = [2][64][64]int64{}
}

func (h *Table) String() string {
	var sb strings.Builder
	for from := SqA1; from < SqNone; from++ {
		for to := SqA1; to < SqNone; to++ {
			w := h.counts[White][from][to]
			b := h.counts[Black][from][to]
			if w == 0 && b == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("%s%s: white=%d black=%d\n", from, to, w, b))
		}
	}
	return sb.String()
}
