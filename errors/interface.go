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

// Package errors provides the relay's shared error type: numeric error
// codes (one range per package, see modules.go), parent-error chaining,
// and a captured call-site trace, with compatibility for errors.Is/As.
package errors

import (
	"errors"
	"strings"
)

// FuncMap iterates over an error and its parents; returning false stops the walk.
type FuncMap func(e error) bool

// Error extends the standard error with a numeric code, a parent chain
// and a captured call-site trace.
type Error interface {
	error

	// IsCode reports whether this error's own code equals code (parents not checked).
	IsCode(code CodeError) bool
	// HasCode reports whether this error or any parent has code.
	HasCode(code CodeError) bool
	// GetCode returns this error's own code.
	GetCode() CodeError
	// GetParentCode returns the codes of this error and all parents, deduplicated.
	GetParentCode() []CodeError

	// Is implements compatibility with the standard errors.Is.
	Is(e error) bool
	// HasParent reports whether this error has at least one parent.
	HasParent() bool
	// Add appends non-nil errors as parents of this error.
	Add(parent ...error)

	// Code returns the numeric code as a raw uint16.
	Code() uint16
	// StringError returns this error's own message, without parents.
	StringError() string

	// GetTrace returns the captured call-site ("file#line") for this error.
	GetTrace() string
	// GetTraceSlice returns the captured call-sites for this error and its parents.
	GetTraceSlice() []string

	// Unwrap exposes parents for errors.Is / errors.As tree walking.
	Unwrap() []error
}

// Is reports whether e can be asserted to Error via errors.As.
func Is(e error) bool {
	var err Error
	return errors.As(e, &err)
}

// Get returns e as an Error if possible, nil otherwise.
func Get(e error) Error {
	var err Error
	if errors.As(e, &err) {
		return err
	}
	return nil
}

// Has reports whether e or any of its parents carries code.
func Has(e error, code CodeError) bool {
	if err := Get(e); err == nil {
		return false
	} else {
		return err.HasCode(code)
	}
}

// ContainsString reports whether e's message, or any parent's, contains s.
func ContainsString(e error, s string) bool {
	if e == nil {
		return false
	}
	if err := Get(e); err != nil {
		if strings.Contains(err.StringError(), s) {
			return true
		}
		for _, p := range err.Unwrap() {
			if ContainsString(p, s) {
				return true
			}
		}
		return false
	}
	return strings.Contains(e.Error(), s)
}

// Make wraps e as an Error, returning e unchanged if it already is one.
// Returns nil if e is nil.
func Make(e error) Error {
	if e == nil {
		return nil
	}
	var err Error
	if errors.As(e, &err) {
		return err
	}
	return &ers{c: 0, e: e.Error(), t: getFrame()}
}

// MakeIfError folds a list of errors into a single Error, or nil if all are nil.
func MakeIfError(err ...error) Error {
	var e Error
	for _, p := range err {
		if p == nil {
			continue
		} else if e == nil {
			e = Make(p)
		} else {
			e.Add(p)
		}
	}
	return e
}

// New creates an Error with the given code, message and optional parents.
func New(code uint16, message string, parent ...error) Error {
	p := make([]Error, 0, len(parent))
	for _, e := range parent {
		if er := Make(e); er != nil {
			p = append(p, er)
		}
	}
	return &ers{c: code, e: message, p: p, t: getFrame()}
}

// Newf creates an Error with a fmt.Sprintf-formatted message.
func Newf(code uint16, pattern string, args ...any) Error {
	return &ers{c: code, e: sprintf(pattern, args...), p: make([]Error, 0), t: getFrame()}
}
