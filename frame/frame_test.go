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

package frame

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	body := []byte(`{"message":"hello"}`)
	wire := Encode(body)

	got, err := ReadFrame(bytes.NewReader(wire))
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestReadFrame_PeerClosedBeforeAnyBytes(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrPeerClosed)
}

func TestReadFrame_ZeroSize(t *testing.T) {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, int32(0))
	_, err := ReadFrame(&buf)
	require.Error(t, err)
}

func TestReadFrame_PositiveSizeRejected(t *testing.T) {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, int32(10))
	_, err := ReadFrame(&buf)
	require.Error(t, err)
}

func TestReadFrame_BadVersion(t *testing.T) {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, int32(-4))
	_ = binary.Write(&buf, binary.LittleEndian, int32(99))
	buf.WriteString("abcd")
	_, err := ReadFrame(&buf)
	require.Error(t, err)
}

func TestReadFrame_ShortBody(t *testing.T) {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, int32(-10))
	_ = binary.Write(&buf, binary.LittleEndian, Version)
	buf.WriteString("abc")
	_, err := ReadFrame(&buf)
	require.Error(t, err)
}

func TestReadFrame_BodyTooLarge(t *testing.T) {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, int32(-(MaxBodySize+1)))
	_, err := ReadFrame(&buf)
	require.Error(t, err)
}

func TestWriteAck(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAck(&buf))
	assert.Equal(t, []byte{Ack}, buf.Bytes())
}
