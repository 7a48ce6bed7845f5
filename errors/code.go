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

import "strconv"

// CodeError is a numeric error classification, similar in spirit to an
// HTTP status code but scoped per-package (see modules.go for ranges).
type CodeError uint16

const (
	// UnknownError is used when no specific code applies.
	UnknownError CodeError = 0
	// UnknownMessage is the fallback message for UnknownError.
	UnknownMessage = "unknown error"
)

// Uint16 returns the raw code value.
func (c CodeError) Uint16() uint16 {
	return uint16(c)
}

// String returns the code as a base-10 string.
func (c CodeError) String() string {
	return strconv.Itoa(int(c))
}

// Error builds a new Error carrying this code, with optional parents.
func (c CodeError) Error(parent ...error) Error {
	return New(c.Uint16(), codeMessage[c], parent...)
}

// Errorf builds a new Error carrying this code, with a formatted message.
func (c CodeError) Errorf(pattern string, args ...any) Error {
	return Newf(c.Uint16(), pattern, args...)
}

// codeMessage is populated by each package's errors.go via RegisterMessage.
var codeMessage = make(map[CodeError]string)

// RegisterMessage associates a human-readable message with a code so that
// CodeError.Error() can build a message without repeating the string at
// every call site.
func RegisterMessage(code CodeError, message string) {
	codeMessage[code] = message
}
