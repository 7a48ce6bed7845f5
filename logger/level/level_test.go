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

package level_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	loglvl "github.com/rtbhouse/log-relay/logger/level"
)

func TestLevel_Ordering(t *testing.T) {
	assert.Equal(t, loglvl.Level(0), loglvl.PanicLevel)
	assert.Equal(t, loglvl.Level(1), loglvl.FatalLevel)
	assert.Equal(t, loglvl.Level(2), loglvl.ErrorLevel)
	assert.Equal(t, loglvl.Level(3), loglvl.WarnLevel)
	assert.Equal(t, loglvl.Level(4), loglvl.InfoLevel)
	assert.Equal(t, loglvl.Level(5), loglvl.DebugLevel)
	assert.Equal(t, loglvl.Level(6), loglvl.NilLevel)
	assert.Less(t, loglvl.PanicLevel, loglvl.DebugLevel)
}

func TestParse_AcceptsEveryConfigToken(t *testing.T) {
	cases := map[string]loglvl.Level{
		"panic":   loglvl.PanicLevel,
		"fatal":   loglvl.FatalLevel,
		"error":   loglvl.ErrorLevel,
		"warning": loglvl.WarnLevel,
		"info":    loglvl.InfoLevel,
		"debug":   loglvl.DebugLevel,
	}
	for token, want := range cases {
		assert.Equal(t, want, loglvl.Parse(token), "token %q", token)
		assert.Equal(t, want, loglvl.Parse(strings.ToUpper(token)), "uppercase token %q", token)
	}
}

func TestParse_UnrecognizedFallsBackToInfo(t *testing.T) {
	assert.Equal(t, loglvl.InfoLevel, loglvl.Parse(""))
	assert.Equal(t, loglvl.InfoLevel, loglvl.Parse("verbose"))
	assert.Equal(t, loglvl.InfoLevel, loglvl.Parse("nil"))
}

func TestParse_NeverProducesNilLevel(t *testing.T) {
	for _, tok := range []string{"panic", "fatal", "error", "warning", "info", "debug", "", "bogus"} {
		assert.NotEqual(t, loglvl.NilLevel, loglvl.Parse(tok))
	}
}
