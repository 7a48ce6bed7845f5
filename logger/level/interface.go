/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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
 *
 *
 */

// Package level defines the severity scale the relay's logger and config
// layer agree on. The token set here must stay exactly in sync with
// config.Config.LogLevel's validator tag (oneof=panic fatal error warning
// info debug): that tag is what rejects a bad operator-supplied value before
// it ever reaches Parse.
package level

import "strings"

// Level is a logging severity, ordered from most (PanicLevel) to least
// (DebugLevel) severe. NilLevel sits one past DebugLevel and silences
// logging entirely; it is never produced by Parse and only ever set
// programmatically.
type Level uint8

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	NilLevel
)

// tokens holds the canonical lowercase spelling for each level, indexed by
// its numeric value. It is the single source of truth for both String and
// Parse, so the two can never drift apart the way they did when the level
// package's vocabulary didn't match config's validator tag.
var tokens = [...]string{
	PanicLevel: "panic",
	FatalLevel: "fatal",
	ErrorLevel: "error",
	WarnLevel:  "warning",
	InfoLevel:  "info",
	DebugLevel: "debug",
}

// Parse converts a config-supplied token to a Level, case-insensitively.
// It recognizes exactly the six tokens config.Config.LogLevel's validator
// accepts; anything else (including the empty string) falls back to
// InfoLevel, the same default config.Default uses for the field itself.
func Parse(s string) Level {
	for lvl, tok := range tokens {
		if tok != "" && strings.EqualFold(tok, s) {
			return Level(lvl)
		}
	}
	return InfoLevel
}
