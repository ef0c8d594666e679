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

// Package search implements iterative-deepening negamax with alpha-beta
// pruning, an optional quiescence extension, and a transposition table.
// The searcher is single-threaded: it owns its Position, move lists and
// TT for the duration of one BestMove call, and the only cancellation
// signal is a cooperatively polled wall-clock deadline.
package search

import (
	"time"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/evaluator"
	"github.com/corvidchess/corvid/internal/history"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/movelist"
	"github.com/corvidchess/corvid/internal/moveorder"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/tt"
	. "github.com/corvidchess/corvid/internal/types"
)

var log = logging.GetLog("search")

// CheckmateScore is the evaluation assigned to a mated position, with the
// remaining depth subtracted so shorter mates score higher than longer
// ones when compared across the search tree.
const CheckmateScore Value = 30000

// Searcher runs a single iterative-deepening search. It is not safe for
// concurrent use; create one per search (or reuse serially) and call
// BestMove once per position.
type Searcher struct {
	limits Limits
	table  *tt.Table
	hist   *history.Table
	stats  Statistics

	deadline time.Time
}

// New creates a Searcher with the given move-time budget, quiescence
// toggle and transposition table size in megabytes.
func New(budget time.Duration, useQuiescence bool, ttSizeMB int) *Searcher {
	return &Searcher{
		limits: NewLimits(budget, useQuiescence),
		table:  tt.New(ttSizeMB),
		hist:   history.New(),
	}
}

// Stats returns the statistics gathered by the most recently completed
// BestMove call.
func (s *Searcher) Stats() Statistics {
	return s.stats
}

// SetDepthLimit caps the deepest iteration BestMove will attempt,
// regardless of how much of the move-time budget remains. Zero (the
// default) means no cap.
func (s *Searcher) SetDepthLimit(depth int) {
	s.limits.Depth = depth
}

// BestMove runs iterative deepening on p until the move-time budget
// expires or (if set) Limits.Depth is reached, and returns the best move
// found. It never returns NullMove while p has at least one legal move.
func (s *Searcher) BestMove(p *position.Position) Move {
	start := time.Now()
	s.deadline = start.Add(s.limits.MoveTime)
	s.stats = Statistics{}
	s.hist.Clear()

	ml := movelist.New()
	movegen.Generate(p, ml)
	if ml.Len() == 0 {
		log.Warningf("BestMove called on a position with no legal moves")
		return NullMove
	}

	var bestMove Move
	var bestValue Value
	depth := 1
	for {
		move, value, completed := s.searchRoot(p, ml, depth)
		if completed {
			bestMove, bestValue = move, value
			s.stats.CompletedDepth = depth
			s.stats.BestMove = bestMove
			s.stats.BestValue = bestValue
		}
		if s.deadlineExpired() {
			break
		}
		if s.limits.Depth > 0 && depth >= s.limits.Depth {
			break
		}
		depth++
	}

	if bestMove == NullMove {
		// The deadline expired before even depth 1 finished (e.g. a zero
		// move-time budget); fall back to the highest-priority ordered
		// move so we still satisfy "never return NullMove with a legal
		// move available".
		moveorder.Order(p, ml, NullMove, s.hist)
		bestMove = ml.At(0)
		s.stats.CompletedDepth = 0
		s.stats.BestMove = bestMove
	}

	s.stats.Elapsed = time.Since(start)
	log.Infof("%s", s.stats.String())
	return bestMove
}

// searchRoot generates and orders moves, then negamaxes each one ply
// deeper. It returns completed=false if the deadline expired before
// every root move was searched, in which case the caller discards the
// partial result and keeps the previous depth's answer.
func (s *Searcher) searchRoot(p *position.Position, ml *movelist.MoveList, depth int) (Move, Value, bool) {
	hashMove := NullMove
	if e, ok := s.table.ProbeEntry(p.Zobrist()); ok {
		hashMove = e.Move
	}
	moveorder.Order(p, ml, hashMove, s.hist)

	best := NullMove
	bestValue := -CheckmateScore - 1
	for i := 0; i < ml.Len(); i++ {
		if s.deadlineExpired() {
			return best, bestValue, false
		}
		m := ml.At(i)
		if err := p.Make(m); err != nil {
			panic("searchRoot: move generator produced an illegal move: " + err.Error())
		}
		value := -s.negamax(p, depth-1, -CheckmateScore-1, CheckmateScore+1)
		p.Unmake()

		if best == NullMove || value > bestValue {
			best = m
			bestValue = value
		}
	}
	if best == NullMove {
		return best, bestValue, false
	}
	s.table.Store(p.Zobrist(), best, bestValue, int8(depth), tt.BoundExact, false)
	return best, bestValue, true
}

// negamax implements alpha-beta search with fail-hard cutoffs, as
// specified: a beta cutoff returns beta itself, not the raw score.
func (s *Searcher) negamax(p *position.Position, depth int, alpha, beta Value) Value {
	s.stats.Nodes++
	key := p.Zobrist()

	if v, ok := s.table.Probe(key, int8(depth), alpha, beta, false); ok {
		s.stats.TTHits++
		return v
	}
	s.stats.TTMisses++

	if s.deadlineExpired() {
		return alpha
	}

	if config.Settings.Search.UseDrawRules && p.IsFiftyMoveDraw() {
		return 0
	}

	if depth == 0 {
		if s.limits.UseQuiescence {
			return s.quiescence(p, alpha, beta)
		}
		return evaluator.Relative(p, p.Stm())
	}

	ml := movelist.New()
	movegen.Generate(p, ml)
	if ml.Len() == 0 {
		if movegen.IsCheck(p) {
			s.stats.Checkmates++
			return -CheckmateScore - Value(depth)
		}
		s.stats.Stalemates++
		return 0
	}

	hashMove := NullMove
	if e, ok := s.table.ProbeEntry(key); ok {
		hashMove = e.Move
	}
	moveorder.Order(p, ml, hashMove, s.hist)

	best := -CheckmateScore - 1
	bound := tt.BoundUpper
	bestMove := NullMove

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if err := p.Make(m); err != nil {
			panic("negamax: move generator produced an illegal move: " + err.Error())
		}
		score := -s.negamax(p, depth-1, -beta, -alpha)
		p.Unmake()

		if score >= beta {
			s.stats.BetaCutoffs++
			if victim := p.PieceAt(m.To()); !victim.IsValid() && !m.IsPromotion() {
				s.hist.Bonus(p.Stm(), m, int8(depth))
			}
			s.table.Store(key, m, beta, int8(depth), tt.BoundLower, false)
			return beta
		}
		if score > best {
			best = score
			bestMove = m
			if score > alpha {
				alpha = score
				bound = tt.BoundExact
			}
		}
	}

	s.table.Store(key, bestMove, best, int8(depth), bound, false)
	return best
}

// quiescence extends the search along captures only, using a stand-pat
// cutoff so quiet, settled positions don't keep recursing.
func (s *Searcher) quiescence(p *position.Position, alpha, beta Value) Value {
	s.stats.Nodes++
	key := p.Zobrist()

	if v, ok := s.table.Probe(key, 0, alpha, beta, true); ok {
		s.stats.TTHits++
		return v
	}

	standPat := evaluator.Relative(p, p.Stm())
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	ml := movelist.New()
	movegen.GenerateCaptures(p, ml)
	if ml.Len() == 0 {
		return alpha
	}
	moveorder.Order(p, ml, NullMove, nil)

	best := alpha
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if err := p.Make(m); err != nil {
			panic("quiescence: move generator produced an illegal move: " + err.Error())
		}
		score := -s.quiescence(p, -beta, -alpha)
		p.Unmake()

		if score >= beta {
			s.table.Store(key, m, beta, 0, tt.BoundLower, true)
			return beta
		}
		if score > best {
			best = score
			if score > alpha {
				alpha = score
			}
		}
	}
	s.table.Store(key, NullMove, best, 0, tt.BoundUpper, true)
	return best
}

func (s *Searcher) deadlineExpired() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}
