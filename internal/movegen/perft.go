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
	"fmt"
	"strings"

	"github.com/corvidchess/corvid/internal/movelist"
	"github.com/corvidchess/corvid/internal/position"
)

// Perft counts the leaf nodes reachable from p at the given depth by
// recursively generating and making every legal move -- the canonical
// move-generator correctness test.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	ml := movelist.New()
	Generate(p, ml)
	if depth == 1 {
		return uint64(ml.Len())
	}
	var nodes uint64
	for _, m := range ml.Slice() {
		if err := p.Make(m); err != nil {
			panic("perft: move generator produced an illegal move: " + err.Error())
		}
		nodes += Perft(p, depth-1)
		p.Unmake()
	}
	return nodes
}

// DivideEntry is one root move's contribution to a Divide call.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// Divide runs Perft one ply at a time for each root move and returns the
// per-move node counts, in generation order, alongside the total -- the
// standard debugging aid for isolating a move generator bug to a specific
// root move.
func Divide(p *position.Position, depth int) ([]DivideEntry, uint64) {
	if depth < 1 {
		return nil, 1
	}
	ml := movelist.New()
	Generate(p, ml)
	entries := make([]DivideEntry, 0, ml.Len())
	var total uint64
	for _, m := range ml.Slice() {
		if err := p.Make(m); err != nil {
			panic("divide: move generator produced an illegal move: " + err.Error())
		}
		n := Perft(p, depth-1)
		p.Unmake()
		entries = append(entries, DivideEntry{Move: m.String(), Nodes: n})
		total += n
	}
	return entries, total
}

// FormatDivide renders a Divide result the way perft debugging tools
// conventionally print it: one "move: count" line per root move followed
// by a total.
func FormatDivide(entries []DivideEntry, total uint64) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%s: %d\n", e.Move, e.Nodes))
	}
	sb.WriteString(fmt.Sprintf("\nNodes searched: %d\n", total))
	return sb.String()
}
