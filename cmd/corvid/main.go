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

// Command corvid is a command-line driver over the engine core: it can
// run perft node counts from a FEN, or search a position for its best
// move under a time and/or depth budget, printing the result and search
// statistics to stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/util"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.Int("loglvl", config.LogLevel, "log level 0 (critical) .. 5 (debug)")
	fen := flag.String("fen", position.StartFen, "fen of the position to search or run perft on")
	perft := flag.Int("perft", 0, "run perft to the given depth on -fen and exit (0 disables)")
	moveTimeMs := flag.Int64("movetime", 0, "search time budget in milliseconds (0 uses the config default)")
	depth := flag.Int("depth", 0, "search depth cap (0 means no cap)")
	quiescence := flag.Bool("quiescence", true, "enable the quiescence search extension")
	ttSizeMB := flag.Int("ttsize", 0, "transposition table size in megabytes (0 uses the config default)")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	config.LogLevel = *logLvl
	log := logging.GetLog("main")

	p, err := position.FromFen(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid fen:", err)
		os.Exit(1)
	}

	if *perft > 0 {
		runPerft(p, *perft)
		return
	}

	moveTime := time.Duration(*moveTimeMs) * time.Millisecond
	if *moveTimeMs == 0 {
		moveTime = time.Duration(config.Settings.Search.MoveTimeMs) * time.Millisecond
	}
	useQuiescence := *quiescence && config.Settings.Search.UseQuiescence
	ttSize := *ttSizeMB
	if ttSize == 0 {
		ttSize = config.Settings.Search.TTSizeMB
	}

	s := search.New(moveTime, useQuiescence, ttSize)
	if *depth > 0 {
		s.SetDepthLimit(*depth)
	}
	log.Infof("searching %s for %s", *fen, moveTime)
	move := s.BestMove(p)
	stats := s.Stats()

	out.Printf("bestmove %s\n", move)
	out.Printf("%s\n", stats.String())
}

func runPerft(p *position.Position, depth int) {
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.Perft(p, d)
		elapsed := time.Since(start)
		out.Printf("perft(%d) = %d nodes in %s (%d nps)\n", d, nodes, elapsed, util.Nps(nodes, elapsed))
	}
}

func printVersionInfo() {
	out.Println("corvid - a chess engine core")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
