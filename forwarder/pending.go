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

package forwarder

import (
	"sync"
	"time"
)

// pollInterval bounds how long PopBatch can overshoot its timeout while
// waiting for the first id to appear.
const pollInterval = 10 * time.Millisecond

// pendingQueue is the supervisor's in-memory index into the persistent
// queue: an ordered list of ids awaiting dispatch. It never holds payloads.
// Multi-producer (frame handlers push, the send loop re-pushes on failure),
// single-consumer (the send loop pops).
type pendingQueue struct {
	mu  sync.Mutex
	ids []string
}

func newPendingQueue() *pendingQueue {
	return &pendingQueue{}
}

// Push appends id to the back of the queue.
func (p *pendingQueue) Push(id string) {
	p.mu.Lock()
	p.ids = append(p.ids, id)
	p.mu.Unlock()
}

// Len reports the current queue depth.
func (p *pendingQueue) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.ids)
}

// PopBatch pops up to max ids. It polls up to timeout for the first id to
// appear; once at least one id is available it drains up to max without
// waiting further, so a batch may come back smaller than max. A timeout
// with nothing pending returns nil.
func (p *pendingQueue) PopBatch(max int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)

	for {
		p.mu.Lock()
		if len(p.ids) > 0 {
			n := max
			if n > len(p.ids) {
				n = len(p.ids)
			}
			batch := append([]string(nil), p.ids[:n]...)
			p.ids = p.ids[n:]
			p.mu.Unlock()
			return batch
		}
		p.mu.Unlock()

		if time.Now().After(deadline) {
			return nil
		}
		time.Sleep(pollInterval)
	}
}
