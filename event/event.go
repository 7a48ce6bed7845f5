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

// Package event classifies a relay payload into one of five kinds by
// inspecting its top-level JSON fields, and names the remote collection
// each kind is dispatched to. The relay never parses a payload on the
// ingest path; classification happens only on the send path.
package event

// Kind identifies which of the five payload shapes a document is.
type Kind uint8

const (
	// KindUnknown is what Classify returns for a document carrying none of
	// the discriminator fields, not even thread_id.
	KindUnknown Kind = iota
	KindMessage
	KindScopeStart
	KindScopeEnd
	KindQATrace
	KindThread
)

// String names the kind for logging.
func (k Kind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindScopeStart:
		return "scope_start"
	case KindScopeEnd:
		return "scope_end"
	case KindQATrace:
		return "qa_trace"
	case KindThread:
		return "thread"
	default:
		return "unknown"
	}
}

// Collection returns the target remote collection name for the kind.
func (k Kind) Collection() string {
	switch k {
	case KindMessage:
		return "messages"
	case KindScopeStart:
		return "scope_starts"
	case KindScopeEnd:
		return "scope_ends"
	case KindQATrace:
		return "qa_traces"
	case KindThread:
		return "threads"
	default:
		return ""
	}
}

// discriminator fields are checked in this fixed order: the first present
// field wins. thread_id is the fallback and only required for the last kind.
const (
	fieldMessage   = "message"
	fieldScopePath = "scope_path"
	fieldEndTime   = "end_time"
	fieldQATrace   = "qa_trace_version"
	fieldThreadID  = "thread_id"
)

// Classify inspects a decoded JSON document's top-level keys and returns
// its Kind. doc is expected to be the result of json.Unmarshal into a
// map[string]interface{}; any other shape yields KindUnknown.
func Classify(doc map[string]interface{}) Kind {
	if _, ok := doc[fieldMessage]; ok {
		return KindMessage
	}
	if _, ok := doc[fieldScopePath]; ok {
		return KindScopeStart
	}
	if _, ok := doc[fieldEndTime]; ok {
		return KindScopeEnd
	}
	if _, ok := doc[fieldQATrace]; ok {
		return KindQATrace
	}
	if _, ok := doc[fieldThreadID]; ok {
		return KindThread
	}
	return KindUnknown
}
