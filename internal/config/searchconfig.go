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

package config

// searchConfiguration holds the tunables governing one search run: how it
// budgets time, which optional phases it runs, and how big its transposition
// table is.
type searchConfiguration struct {
	// MoveTimeMs is the default per-move search budget in milliseconds, used
	// when the caller doesn't supply an explicit move time.
	MoveTimeMs int64

	// UseQuiescence enables the quiescence search extension at leaf nodes of
	// the main negamax tree.
	UseQuiescence bool

	// TTSizeMB is the transposition table size in megabytes; it is rounded
	// down to the nearest power-of-two entry count.
	TTSizeMB int

	// UseDrawRules enables the optional fifty-move-rule draw check during
	// search; disabled by default since the core position/movegen model in
	// this engine does not track repetition and a partial draw rule can be
	// misleading.
	UseDrawRules bool
}

// sets defaults which may be overwritten by the config file.
func init() {
	Settings.Search.MoveTimeMs = 5000
	Settings.Search.UseQuiescence = true
	Settings.Search.TTSizeMB = 64
	Settings.Search.UseDrawRules = false
}
