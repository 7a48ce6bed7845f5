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
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"

	loglvl "github.com/rtbhouse/log-relay/logger/level"
)

type logger struct {
	mu   sync.RWMutex
	lg   *logrus.Logger
	file *os.File
	opt  *Options
	lvl  loglvl.Level
	fld  Fields
}

// New builds a Logger writing to stdout (colorized when possible) at the given level.
func New(lvl loglvl.Level) Logger {
	l := &logger{
		lg:  logrus.New(),
		opt: DefaultOptions(),
		lvl: lvl,
		fld: make(Fields),
	}
	l.lg.SetOutput(colorable.NewColorableStdout())
	l.lg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.lg.SetLevel(lvl.Logrus())
	return l
}

func (l *logger) SetLevel(lvl loglvl.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lvl = lvl
	l.lg.SetLevel(lvl.Logrus())
}

func (l *logger) GetLevel() loglvl.Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lvl
}

func (l *logger) SetFields(f Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fld = f.Clone()
}

func (l *logger) GetFields() Fields {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fld.Clone()
}

func (l *logger) SetOptions(o *Options) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if o == nil {
		o = DefaultOptions()
	}

	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}

	var out = colorable.NewColorableStdout()

	if o.FilePath != "" {
		f, err := os.OpenFile(o.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		l.file = f
		if o.Stdout {
			out = colorable.NewColorableStdout()
			l.lg.SetOutput(out)
			l.lg.AddHook(newFileHook(f))
		} else {
			l.lg.SetOutput(f)
		}
	} else {
		l.lg.SetOutput(out)
	}

	l.lg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableTimestamp: o.DisableTimestamp})
	l.opt = o
	return nil
}

func (l *logger) GetOptions() *Options {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.opt
}

func (l *logger) Clone() Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := New(l.lvl).(*logger)
	n.fld = l.fld.Clone()
	o := *l.opt
	_ = n.SetOptions(&o)
	return n
}

func (l *logger) Entry(lvl loglvl.Level, message string, args ...interface{}) Entry {
	l.mu.RLock()
	fld := l.fld.Clone()
	off := l.lvl == loglvl.NilLevel
	l.mu.RUnlock()

	if off {
		lvl = loglvl.NilLevel
	}

	return &entry{
		l:       l.lg,
		lvl:     lvl,
		message: sprintfIfArgs(message, args...),
		fields:  fld,
	}
}

func (l *logger) Debug(message string, data interface{}, args ...interface{}) {
	l.Entry(loglvl.DebugLevel, message, args...).Data(data).Log()
}

func (l *logger) Info(message string, data interface{}, args ...interface{}) {
	l.Entry(loglvl.InfoLevel, message, args...).Data(data).Log()
}

func (l *logger) Warning(message string, data interface{}, args ...interface{}) {
	l.Entry(loglvl.WarnLevel, message, args...).Data(data).Log()
}

func (l *logger) Error(message string, data interface{}, args ...interface{}) {
	l.Entry(loglvl.ErrorLevel, message, args...).Data(data).Log()
}

func (l *logger) Fatal(message string, data interface{}, args ...interface{}) {
	l.Entry(loglvl.FatalLevel, message, args...).Data(data).Log()
	os.Exit(1)
}

func (l *logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}
