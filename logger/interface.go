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

// Package logger is a small logrus-backed structured logger: one sink to
// stdout, one optional append-only file sink, fixed default fields,
// and per-entry extra fields.
package logger

import (
	loglvl "github.com/rtbhouse/log-relay/logger/level"
)

// FuncLog returns a Logger. Used so collaborators (e.g. the hclog bridge)
// can be handed a factory instead of a concrete instance, and keep
// observing logger replacement (SetOptions, Clone) transparently.
type FuncLog func() Logger

// Fields is a flat bag of structured key/value context attached to an entry.
type Fields map[string]interface{}

// Clone returns a shallow copy of Fields.
func (f Fields) Clone() Fields {
	n := make(Fields, len(f))
	for k, v := range f {
		n[k] = v
	}
	return n
}

// Logger is the relay's structured logging façade.
type Logger interface {
	// SetLevel changes the minimal level of message that is emitted.
	SetLevel(lvl loglvl.Level)
	// GetLevel returns the current minimal level.
	GetLevel() loglvl.Level

	// SetFields replaces the default fields attached to every entry.
	SetFields(f Fields)
	// GetFields returns the default fields attached to every entry.
	GetFields() Fields

	// SetOptions reconfigures the logger's sinks (stdout/file).
	SetOptions(o *Options) error
	// GetOptions returns the logger's current sink configuration.
	GetOptions() *Options

	// Clone returns an independent copy of this logger (new default fields map).
	Clone() Logger

	// Entry starts a new structured log entry at the given level.
	Entry(lvl loglvl.Level, message string, args ...interface{}) Entry

	// Debug, Info, Warning, Error, Fatal: level-specific convenience wrappers.
	Debug(message string, data interface{}, args ...interface{})
	Info(message string, data interface{}, args ...interface{})
	Warning(message string, data interface{}, args ...interface{})
	Error(message string, data interface{}, args ...interface{})
	// Fatal logs then calls os.Exit(1).
	Fatal(message string, data interface{}, args ...interface{})

	// Close flushes and closes the file sink, if any.
	Close() error
}

// Entry is a single in-flight log record being built up with fields before
// being emitted with Log().
type Entry interface {
	// Field attaches a single key/value pair.
	Field(key string, value interface{}) Entry
	// Data attaches a structured payload (commonly a Fields map or a struct).
	Data(data interface{}) Entry
	// ErrorData attaches an error under the "error" field, if non-nil.
	ErrorData(err error) Entry
	// Log emits the entry.
	Log()
}
