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

// Package id generates sortable per-process unique ids for queue keys:
// <host-tag 4ch>-<process-tag 11ch>-<seq 11ch>, all base62, all zero-padded
// so that byte-lexicographic order matches numeric order.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"hash/fnv"
	"sync"
	"time"

	"github.com/shirou/gopsutil/host"
)

const (
	alphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	base      = uint64(len(alphabet))
	hostWidth = 4
	procWidth = 11
	seqWidth  = 11

	hostModulus = uint64(62 * 62 * 62 * 62)
)

// Generator produces ids unique within the lifetime of the current process
// and fresh, chronologically-later-sorting ids across restarts.
type Generator struct {
	mu      sync.Mutex
	seq     uint64
	hostTag string
	procTag string
}

// New builds a Generator, computing the host-tag from the local hostname
// (via gopsutil, falling back to os.Hostname semantics internally) and the
// process-tag from the current epoch seconds (high 32 bits) followed by 32
// bits of crypto randomness (low 32 bits).
func New() (*Generator, error) {
	hostname, err := hostnameOf()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		hostTag: hostTag(hostname),
		procTag: processTag(time.Now()),
	}
	return g, nil
}

func hostnameOf() (string, error) {
	if info, err := host.Info(); err == nil && info.Hostname != "" {
		return info.Hostname, nil
	}
	return osHostname()
}

func hostTag(hostname string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(hostname))
	v := uint64(h.Sum32()) % hostModulus
	return encodeBase62(v, hostWidth)
}

func processTag(now time.Time) string {
	var buf [8]byte
	_, _ = rand.Read(buf[:])
	r := binary.BigEndian.Uint64(buf[:])

	ts := uint64(now.Unix()) & 0xFFFFFFFF
	mixed := (ts << 32) | (r & 0xFFFFFFFF)

	return encodeBase62(mixed, procWidth)
}

// Next returns the next id produced by this generator. Safe for concurrent use.
func (g *Generator) Next() string {
	g.mu.Lock()
	g.seq++
	s := g.seq
	g.mu.Unlock()

	return g.hostTag + "-" + g.procTag + "-" + encodeBase62(s, seqWidth)
}

func encodeBase62(v uint64, width int) string {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = alphabet[v%base]
		v /= base
	}
	return string(buf)
}
