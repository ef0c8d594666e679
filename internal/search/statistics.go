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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/util"
)

var out = message.NewPrinter(language.German)

// Statistics reports how the most recent search spent its time, for
// logging and for the TT-consistency property test.
type Statistics struct {
	Nodes       uint64
	TTHits      uint64
	TTMisses    uint64
	Checkmates  uint64
	Stalemates  uint64
	BetaCutoffs uint64

	CompletedDepth int
	BestMove       Move
	BestValue      Value
	Elapsed        time.Duration
}

// Nps returns nodes searched per second for the most recent search.
func (s *Statistics) Nps() uint64 {
	return util.Nps(s.Nodes, s.Elapsed)
}

func (s *Statistics) String() string {
	return out.Sprintf(
		"depth=%d nodes=%d nps=%d tt_hits=%d tt_misses=%d beta_cuts=%d best=%s (%d) time=%s",
		s.CompletedDepth, s.Nodes, s.Nps(), s.TTHits, s.TTMisses, s.BetaCutoffs,
		s.BestMove, s.BestValue, s.Elapsed)
}
