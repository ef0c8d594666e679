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

// Package config holds globally available configuration values, set by
// package-level defaults and optionally overridden from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile is the path to the TOML config file Setup reads, relative to
	// the working directory the engine is launched from.
	ConfFile = "./config.toml"

	// LogLevel is the general logger level, using the op/go-logging scale
	// (0=Critical .. 5=Debug). Overridable by -loglvl; the config file
	// does not set it.
	LogLevel = 4

	// Settings is the global configuration tree, populated with defaults in
	// each sub-configuration's init() and then optionally overwritten by
	// Setup from the TOML file.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
}

// Setup reads the configuration file named by ConfFile, if present, and
// merges it over the package defaults. It is idempotent; later calls are
// no-ops.
func Setup() {
	if initialized {
		return
	}
	if _, err := os.Stat(ConfFile); err == nil {
		if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
			fmt.Fprintln(os.Stderr, "config: could not decode", ConfFile, ":", err)
		}
	}
	initialized = true
}
