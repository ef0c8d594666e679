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

// Package tt implements the searcher's transposition table: a fixed-size,
// open-addressed, always-replace cache from Zobrist key to a previously
// computed search result.
package tt

import (
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/types"
)

var log = logging.GetLog("tt")

// Table is a fixed-size transposition table indexed by Zobrist key modulo
// the slot count. A colliding write overwrites the prior entry
// unconditionally -- always-replace, no chaining.
type Table struct {
	entries []Entry
}

// New creates a Table sized to hold roughly sizeMB megabytes of entries,
// rounded down to the nearest power of two slot count so the index can be
// computed with a mask instead of a modulo.
func New(sizeMB int) *Table {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	const entrySize = 32 // bytes, generously rounded up for Entry's fields
	want := sizeMB * 1024 * 1024 / entrySize
	slots := 1
	for slots*2 <= want {
		slots *= 2
	}
	if slots < 1 {
		slots = 1
	}
	log.Infof("allocating transposition table: %d slots (~%d MB)", slots, sizeMB)
	return &Table{entries: make([]Entry, slots)}
}

func (t *Table) index(key uint64) uint64 {
	return key & uint64(len(t.entries)-1)
}

// Store writes an entry for key, unconditionally overwriting whatever was
// in that slot.
func (t *Table) Store(key uint64, move types.Move, value types.Value, depth int8, bound Bound, qsearch bool) {
	t.entries[t.index(key)] = Entry{
		Key:     key,
		Move:    move,
		Value:   value,
		Depth:   depth,
		Bound:   bound,
		QSearch: qsearch,
	}
}

// Probe looks up key and reports whether the stored value is directly
// usable for a search at the given depth and (alpha, beta) window. A
// quiescence-tainted entry never answers a non-quiescence probe. On a
// usable hit it returns the stored value and true; otherwise the zero
// value and false. The entry (if the key matched, whether or not its
// value was directly usable) is returned separately via ProbeEntry for
// callers that also want the stored move for ordering.
func (t *Table) Probe(key uint64, depth int8, alpha, beta types.Value, inQSearch bool) (types.Value, bool) {
	e := &t.entries[t.index(key)]
	if e.isEmpty() || e.Key != key {
		return 0, false
	}
	if e.QSearch && !inQSearch {
		return 0, false
	}
	if e.Depth < depth {
		return 0, false
	}
	switch e.Bound {
	case BoundExact:
		return e.Value, true
	case BoundLower:
		if e.Value >= beta {
			return e.Value, true
		}
	case BoundUpper:
		if e.Value <= alpha {
			return e.Value, true
		}
	}
	return 0, false
}

// ProbeEntry returns the raw entry stored for key, and whether the key
// matched -- used by move ordering to recover a hash move even when the
// stored value itself isn't usable at the current depth/window.
func (t *Table) ProbeEntry(key uint64) (Entry, bool) {
	e := t.entries[t.index(key)]
	if e.isEmpty() || e.Key != key {
		return Entry{}, false
	}
	return e, true
}

// Clear zeroes every entry. Only called outside of search.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// Len returns the number of slots in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
