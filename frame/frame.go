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

// Package frame implements the relay's length-prefixed wire protocol: a
// four-byte negative size, a four-byte version, the body, and a one-byte
// acknowledgement written back to the sender once the body is durable.
package frame

import (
	"encoding/binary"
	"io"

	liberr "github.com/rtbhouse/log-relay/errors"
)

const (
	// Version is the only wire version this relay accepts.
	Version int32 = 2

	// Ack is written back to the peer once a frame's payload is durable.
	Ack byte = 0x55

	headerSize = 8 // int32 size + int32 version, little-endian
)

const (
	errBadVersion liberr.CodeError = liberr.MinPkgFrame + iota
	errZeroSize
	errPositiveSize
	errShortRead
	errBodyTooLarge
)

func init() {
	liberr.RegisterMessage(errBadVersion, "frame: unsupported protocol version")
	liberr.RegisterMessage(errZeroSize, "frame: zero-length frame")
	liberr.RegisterMessage(errPositiveSize, "frame: positive size field (legacy protocol unsupported)")
	liberr.RegisterMessage(errShortRead, "frame: peer closed mid-frame")
	liberr.RegisterMessage(errBodyTooLarge, "frame: body exceeds maximum size")
}

// MaxBodySize bounds how large a single frame body may be, guarding the
// relay against a peer that sends a bogus size and exhausts memory.
const MaxBodySize = 64 << 20 // 64 MiB

// ErrPeerClosed is returned by ReadFrame when the peer closes the connection
// before sending a frame, i.e. io.EOF on the very first read of a new frame.
// This is a clean disconnect, not a protocol error.
var ErrPeerClosed = io.EOF

// ReadFrame reads one frame from r: a negative int32 size, an int32 version,
// and |size| bytes of body. It returns the decoded body, or an error
// (possibly ErrPeerClosed) if the frame is malformed or the peer vanished.
func ReadFrame(r io.Reader) ([]byte, error) {
	var header [headerSize]byte

	if _, err := io.ReadFull(r, header[:4]); err != nil {
		if err == io.EOF {
			return nil, ErrPeerClosed
		}
		return nil, errShortRead.Error(err)
	}

	size := int32(binary.LittleEndian.Uint32(header[:4]))

	if size == 0 {
		return nil, errZeroSize.Error()
	}
	if size > 0 {
		return nil, errPositiveSize.Error()
	}

	bodyLen := int(-size)
	if bodyLen > MaxBodySize {
		return nil, errBodyTooLarge.Error()
	}

	if _, err := io.ReadFull(r, header[4:8]); err != nil {
		return nil, errShortRead.Error(err)
	}

	version := int32(binary.LittleEndian.Uint32(header[4:8]))
	if version != Version {
		return nil, errBadVersion.Error()
	}

	body := make([]byte, bodyLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, errShortRead.Error(err)
	}

	return body, nil
}

// WriteAck writes the single-byte acknowledgement to w.
func WriteAck(w io.Writer) error {
	_, err := w.Write([]byte{Ack})
	return err
}

// Encode frames body for writing onto the wire: a negative size, the fixed
// version, and the body itself. Used by test clients and any in-process
// producer that talks the protocol directly.
func Encode(body []byte) []byte {
	out := make([]byte, headerSize+len(body))
	binary.LittleEndian.PutUint32(out[0:4], uint32(int32(-len(body))))
	binary.LittleEndian.PutUint32(out[4:8], uint32(Version))
	copy(out[8:], body)
	return out
}
