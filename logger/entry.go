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

	"github.com/sirupsen/logrus"

	loglvl "github.com/rtbhouse/log-relay/logger/level"
)

type entry struct {
	l       *logrus.Logger
	lvl     loglvl.Level
	message string
	fields  Fields
}

func (e *entry) Field(key string, value interface{}) Entry {
	if e.fields == nil {
		e.fields = make(Fields)
	}
	e.fields[key] = value
	return e
}

func (e *entry) Data(data interface{}) Entry {
	if data == nil {
		return e
	}

	switch v := data.(type) {
	case Fields:
		for k, val := range v {
			e.Field(k, val)
		}
	case map[string]interface{}:
		for k, val := range v {
			e.Field(k, val)
		}
	default:
		e.Field("data", v)
	}

	return e
}

func (e *entry) ErrorData(err error) Entry {
	if err != nil {
		e.Field("error", err.Error())
	}
	return e
}

func (e *entry) Log() {
	if e.lvl == loglvl.NilLevel {
		return
	}

	fields := make(logrus.Fields, len(e.fields))
	for k, v := range e.fields {
		fields[k] = v
	}

	le := e.l.WithFields(fields)

	switch e.lvl {
	case loglvl.PanicLevel:
		le.Panic(e.message)
	case loglvl.FatalLevel:
		le.Log(logrus.FatalLevel, e.message)
	case loglvl.ErrorLevel:
		le.Error(e.message)
	case loglvl.WarnLevel:
		le.Warn(e.message)
	case loglvl.InfoLevel:
		le.Info(e.message)
	case loglvl.DebugLevel:
		le.Debug(e.message)
	}
}

func sprintfIfArgs(message string, args ...interface{}) string {
	if len(args) == 0 {
		return message
	}
	return fmt.Sprintf(message, args...)
}
