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

// Options configures the logger's output sinks.
type Options struct {
	// Stdout keeps the console sink (colorized when attached to a TTY) when
	// FilePath is set; with an empty FilePath the console is always used.
	Stdout bool
	// FilePath, when non-empty, enables a file sink at this path. With Stdout
	// set it is a second sink writing JSON lines; without Stdout it replaces
	// the console and receives the same text format.
	FilePath string
	// DisableTimestamp omits the timestamp field (useful under systemd, which adds its own).
	DisableTimestamp bool
}

// DefaultOptions returns the logger's default sink configuration: stdout only.
func DefaultOptions() *Options {
	return &Options{Stdout: true}
}
