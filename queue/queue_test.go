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

package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Queue {
	t.Helper()
	q, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = q.Close() })
	return q
}

func TestQueue_PutGetDelete(t *testing.T) {
	q := openTemp(t)

	require.NoError(t, q.Put("0001", []byte("hello")))

	got, err := q.Get("0001")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	require.NoError(t, q.Delete("0001"))

	_, err = q.Get("0001")
	assert.Error(t, err)
}

func TestQueue_ScanAllOrdered(t *testing.T) {
	q := openTemp(t)

	ids := []string{"c-0003", "a-0001", "b-0002"}
	for _, id := range ids {
		require.NoError(t, q.Put(id, []byte(id)))
	}

	got, err := q.ScanAll()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"a-0001", "b-0002", "c-0003"}, got)
}

func TestQueue_ScanAllEmpty(t *testing.T) {
	q := openTemp(t)

	got, err := q.ScanAll()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQueue_ReopenSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	q1, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, q1.Put("x", []byte("payload")))
	require.NoError(t, q1.Close())

	q2, err := Open(dir)
	require.NoError(t, err)
	defer q2.Close()

	got, err := q2.Get("x")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}
