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

package logger

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hashicorp/go-hclog"

	loglvl "github.com/rtbhouse/log-relay/logger/level"
)

// hclogBridge adapts this package's Logger to hclog.Logger, so the retryablehttp
// client used by the document database sender can emit through the same sinks
// as the rest of the daemon.
type hclogBridge struct {
	fn   FuncLog
	name string
	impl hclog.Level
}

// NewHCLog wraps fn (a Logger factory) as an hclog.Logger.
func NewHCLog(fn FuncLog) hclog.Logger {
	return &hclogBridge{fn: fn, name: "docdb"}
}

func (h *hclogBridge) toArgs(args []interface{}) Fields {
	f := make(Fields, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		k := fmt.Sprintf("%v", args[i])
		f[k] = args[i+1]
	}
	return f
}

func (h *hclogBridge) Log(level hclog.Level, msg string, args ...interface{}) {
	switch level {
	case hclog.Trace, hclog.Debug:
		h.Debug(msg, args...)
	case hclog.Info:
		h.Info(msg, args...)
	case hclog.Warn:
		h.Warn(msg, args...)
	case hclog.Error:
		h.Error(msg, args...)
	}
}

func (h *hclogBridge) Trace(msg string, args ...interface{}) {
	h.fn().Entry(loglvl.DebugLevel, msg).Data(h.toArgs(args)).Log()
}

func (h *hclogBridge) Debug(msg string, args ...interface{}) {
	h.fn().Entry(loglvl.DebugLevel, msg).Data(h.toArgs(args)).Log()
}

func (h *hclogBridge) Info(msg string, args ...interface{}) {
	h.fn().Entry(loglvl.InfoLevel, msg).Data(h.toArgs(args)).Log()
}

func (h *hclogBridge) Warn(msg string, args ...interface{}) {
	h.fn().Entry(loglvl.WarnLevel, msg).Data(h.toArgs(args)).Log()
}

func (h *hclogBridge) Error(msg string, args ...interface{}) {
	h.fn().Entry(loglvl.ErrorLevel, msg).Data(h.toArgs(args)).Log()
}

func (h *hclogBridge) IsTrace() bool { return h.fn().GetLevel() >= loglvl.DebugLevel }
func (h *hclogBridge) IsDebug() bool { return h.fn().GetLevel() >= loglvl.DebugLevel }
func (h *hclogBridge) IsInfo() bool  { return h.fn().GetLevel() >= loglvl.InfoLevel }
func (h *hclogBridge) IsWarn() bool  { return h.fn().GetLevel() >= loglvl.WarnLevel }
func (h *hclogBridge) IsError() bool { return h.fn().GetLevel() >= loglvl.ErrorLevel }

func (h *hclogBridge) ImpliedArgs() []interface{} { return nil }

func (h *hclogBridge) With(args ...interface{}) hclog.Logger {
	extra := h.toArgs(args)
	base := h.fn
	return &hclogBridge{fn: func() Logger {
		l := base()
		f := l.GetFields()
		for k, v := range extra {
			f[k] = v
		}
		cl := l.Clone()
		cl.SetFields(f)
		return cl
	}, name: h.name}
}

func (h *hclogBridge) Name() string { return h.name }

func (h *hclogBridge) Named(name string) hclog.Logger {
	n := *h
	if n.name != "" {
		n.name = n.name + "." + name
	} else {
		n.name = name
	}
	return &n
}

func (h *hclogBridge) ResetNamed(name string) hclog.Logger {
	n := *h
	n.name = name
	return &n
}

func (h *hclogBridge) SetLevel(level hclog.Level) {
	switch level {
	case hclog.Trace, hclog.Debug:
		h.fn().SetLevel(loglvl.DebugLevel)
	case hclog.Info:
		h.fn().SetLevel(loglvl.InfoLevel)
	case hclog.Warn:
		h.fn().SetLevel(loglvl.WarnLevel)
	case hclog.Error:
		h.fn().SetLevel(loglvl.ErrorLevel)
	}
}

func (h *hclogBridge) GetLevel() hclog.Level {
	switch h.fn().GetLevel() {
	case loglvl.DebugLevel:
		return hclog.Debug
	case loglvl.InfoLevel:
		return hclog.Info
	case loglvl.WarnLevel:
		return hclog.Warn
	case loglvl.ErrorLevel, loglvl.FatalLevel, loglvl.PanicLevel:
		return hclog.Error
	default:
		return hclog.NoLevel
	}
}

func (h *hclogBridge) StandardLogger(opts *hclog.StandardLoggerOptions) *log.Logger {
	return log.New(os.Stderr, "", 0)
}

func (h *hclogBridge) StandardWriter(opts *hclog.StandardLoggerOptions) io.Writer {
	return os.Stderr
}
