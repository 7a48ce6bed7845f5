/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

package errors

import (
	"fmt"
	"runtime"
	"strings"
)

func sprintf(pattern string, args ...any) string {
	if len(args) == 0 {
		return pattern
	}
	return fmt.Sprintf(pattern, args...)
}

type ers struct {
	c uint16
	e string
	p []Error
	t runtime.Frame
}

func (e *ers) is(err *ers) bool {
	if e == nil || err == nil {
		return false
	}

	if e.GetTrace() != "" || err.GetTrace() != "" {
		return strings.EqualFold(e.GetTrace(), err.GetTrace())
	}

	if e.e != "" || err.e != "" {
		return strings.EqualFold(e.e, err.e)
	}

	return e.c > 0 && err.c > 0 && e.c == err.c
}

func (e *ers) Is(err error) bool {
	if err == nil {
		return false
	}
	if er, ok := err.(*ers); ok {
		return e.is(er)
	}
	return strings.EqualFold(e.e, err.Error())
}

func (e *ers) Add(parent ...error) {
	for _, v := range parent {
		if v == nil {
			continue
		}

		if er, ok := v.(*ers); ok {
			if e.is(er) {
				e.p = append(e.p, er.p...)
			} else {
				e.p = append(e.p, er)
			}
			continue
		}

		if er, ok := v.(Error); ok {
			e.p = append(e.p, er)
			continue
		}

		e.p = append(e.p, &ers{c: 0, e: v.Error()})
	}
}

func (e *ers) IsCode(code CodeError) bool {
	return e.c == code.Uint16()
}

func (e *ers) HasCode(code CodeError) bool {
	if e.IsCode(code) {
		return true
	}
	for _, p := range e.p {
		if p.HasCode(code) {
			return true
		}
	}
	return false
}

func (e *ers) GetCode() CodeError {
	return CodeError(e.c)
}

func (e *ers) GetParentCode() []CodeError {
	res := []CodeError{e.GetCode()}
	for _, p := range e.p {
		res = append(res, p.GetParentCode()...)
	}
	return uniqCode(res)
}

func (e *ers) HasParent() bool {
	return len(e.p) > 0
}

func (e *ers) Code() uint16 {
	return e.c
}

func (e *ers) StringError() string {
	return e.e
}

func (e *ers) Error() string {
	if e.e == "" {
		return UnknownMessage
	}
	if e.c == 0 {
		return e.e
	}
	return fmt.Sprintf("[%d] %s", e.c, e.e)
}

func (e *ers) GetTrace() string {
	if e.t.File != "" {
		return fmt.Sprintf("%s#%d", filterPath(e.t.File), e.t.Line)
	} else if e.t.Function != "" {
		return fmt.Sprintf("%s#%d", e.t.Function, e.t.Line)
	}
	return ""
}

func (e *ers) GetTraceSlice() []string {
	r := []string{e.GetTrace()}
	for _, v := range e.p {
		if t := v.GetTrace(); t != "" {
			r = append(r, t)
		}
	}
	return r
}

func (e *ers) Unwrap() []error {
	if len(e.p) == 0 {
		return nil
	}
	r := make([]error, 0, len(e.p))
	for _, v := range e.p {
		if v != nil {
			r = append(r, v)
		}
	}
	return r
}

func uniqCode(in []CodeError) []CodeError {
	seen := make(map[CodeError]struct{}, len(in))
	out := make([]CodeError, 0, len(in))
	for _, c := range in {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// compile-time check: *ers satisfies the standard error tree-walking hooks.
var _ interface {
	Unwrap() []error
	error
} = (*ers)(nil)
