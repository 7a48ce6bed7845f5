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

package server

import (
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtbhouse/log-relay/frame"
)

func TestServer_AcceptsFrameAndAcks(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "relay.sock")

	var mu sync.Mutex
	var got []byte

	srv, err := New(sock, func(payload []byte) error {
		mu.Lock()
		got = append([]byte(nil), payload...)
		mu.Unlock()
		return nil
	}, nil, nil)
	require.NoError(t, err)

	go srv.Serve()
	defer srv.Close()

	conn, err := net.Dial("unix", sock)
	require.NoError(t, err)
	defer conn.Close()

	body := []byte(`{"message":"hi"}`)
	_, err = conn.Write(frame.Encode(body))
	require.NoError(t, err)

	ack := make([]byte, 1)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, err = conn.Read(ack)
	require.NoError(t, err)
	assert.Equal(t, frame.Ack, ack[0])

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, body, got)
}

func TestServer_SequentialFramesOnOneConnection(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "relay2.sock")

	var mu sync.Mutex
	var count int

	srv, err := New(sock, func(payload []byte) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	}, nil, nil)
	require.NoError(t, err)

	go srv.Serve()
	defer srv.Close()

	conn, err := net.Dial("unix", sock)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(2 * time.Second))

	for i := 0; i < 5; i++ {
		_, err = conn.Write(frame.Encode([]byte(`{"message":"x"}`)))
		require.NoError(t, err)
		ack := make([]byte, 1)
		_, err = conn.Read(ack)
		require.NoError(t, err)
		assert.Equal(t, frame.Ack, ack[0])
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, count)
}

func TestServer_IngestErrorClosesConnection(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "relay3.sock")

	srv, err := New(sock, func(payload []byte) error {
		return assert.AnError
	}, nil, nil)
	require.NoError(t, err)

	go srv.Serve()
	defer srv.Close()

	conn, err := net.Dial("unix", sock)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write(frame.Encode([]byte(`{"message":"x"}`)))
	require.NoError(t, err)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	buf := make([]byte, 1)
	_, err = conn.Read(buf)
	assert.Error(t, err, "connection should be closed without an ack")
}
