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

// Package sender implements the relay's sender pool: a fixed number of
// isolated workers that pull payloads off a hand-off channel, classify
// them by event kind, and insert them into the remote document database.
// Workers run as goroutines with independent panic recovery rather than
// separate OS processes — the specification requires only fault isolation,
// and a worker's crash must never corrupt a peer or the supervisor.
package sender

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rtbhouse/log-relay/docdb"
	"github.com/rtbhouse/log-relay/event"
	"github.com/rtbhouse/log-relay/logger"
	"github.com/rtbhouse/log-relay/metrics"
)

// SendRequest is pushed by the supervisor onto the work channel.
type SendRequest struct {
	ID      string
	Payload []byte
}

// SendResult is pushed by a worker onto the result channel. Err is nil on
// success, including the two lossy/idempotent cases defined by the spec:
// malformed JSON (logged and dropped) and duplicate key (treated as success).
type SendResult struct {
	ID  string
	Err error
}

// Inserter is the subset of docdb.Client the pool depends on, so tests can
// substitute a fake.
type Inserter interface {
	Insert(ctx context.Context, collection, key string, doc map[string]interface{}) error
}

// Pool runs N isolated sender workers.
type Pool struct {
	n       int
	db      Inserter
	log     logger.FuncLog
	metrics *metrics.Collectors
	work    chan SendRequest
	results chan SendResult
	done    chan struct{}
	alive   []int32
	wg      *errgroup.Group
}

// New builds a Pool with n workers dispatching through db. m may be nil, in
// which case send outcomes are not exported to prometheus.
func New(n int, db Inserter, log logger.FuncLog, m *metrics.Collectors) *Pool {
	if n <= 0 {
		n = 8
	}
	return &Pool{
		n:       n,
		db:      db,
		log:     log,
		metrics: m,
		work:    make(chan SendRequest, n),
		results: make(chan SendResult, n),
		done:    make(chan struct{}),
		alive:   make([]int32, n),
		wg:      &errgroup.Group{},
	}
}

// Work returns the channel the supervisor pushes SendRequests onto.
func (p *Pool) Work() chan<- SendRequest { return p.work }

// Results returns the channel workers push SendResults onto.
func (p *Pool) Results() <-chan SendResult { return p.results }

// Start launches all N workers under an errgroup, so a single Wait call
// after Shutdown blocks until every worker has actually returned instead of
// the supervisor merely assuming they will.
func (p *Pool) Start() {
	for i := 0; i < p.n; i++ {
		idx := i
		atomic.StoreInt32(&p.alive[idx], 1)
		p.wg.Go(func() error {
			p.runWorker(idx)
			return nil
		})
	}
}

// Shutdown sets the shutdown latch, signalling every worker to exit after
// its current item. Safe to call multiple times.
func (p *Pool) Shutdown() {
	select {
	case <-p.done:
	default:
		close(p.done)
	}
}

// Wait blocks until every worker launched by Start has returned. Callers
// invoke it after Shutdown to confirm the pool has fully drained before
// tearing down anything workers might still touch (the db client, the
// queue).
func (p *Pool) Wait() {
	_ = p.wg.Wait()
}

// Liveness reports whether worker i is still running.
func (p *Pool) Liveness(i int) bool {
	return atomic.LoadInt32(&p.alive[i]) == 1
}

// AnyDead reports whether any worker has exited, whether it crashed or
// returned after Shutdown. The supervisor polls this while waiting for
// results.
func (p *Pool) AnyDead() bool {
	for i := range p.alive {
		if !p.Liveness(i) {
			return true
		}
	}
	return false
}

func (p *Pool) runWorker(idx int) {
	if p.metrics != nil {
		p.metrics.WorkerAlive.Inc()
	}
	defer func() {
		if r := recover(); r != nil {
			if p.log != nil {
				p.log().Error("sender worker panicked", logger.Fields{"worker": idx, "panic": r})
			}
		}
		atomic.StoreInt32(&p.alive[idx], 0)
		if p.metrics != nil {
			p.metrics.WorkerAlive.Dec()
		}
	}()

	for {
		select {
		case <-p.done:
			return
		case req, ok := <-p.work:
			if !ok {
				return
			}
			p.results <- p.handle(req)
		case <-time.After(time.Second):
			// idle tick: observe the shutdown latch even with no work.
		}
	}
}

func (p *Pool) handle(req SendRequest) SendResult {
	var doc map[string]interface{}
	if err := json.Unmarshal(req.Payload, &doc); err != nil {
		if p.log != nil {
			p.log().Warning("dropping malformed payload", logger.Fields{"id": req.ID, "error": err.Error()})
		}
		return SendResult{ID: req.ID, Err: nil}
	}

	kind := event.Classify(doc)
	collection := kind.Collection()
	if collection == "" {
		collection = event.KindThread.Collection()
	}

	ctx := context.Background()
	err := p.db.Insert(ctx, collection, req.ID, doc)

	if err != nil && docdb.IsSerializationFailed(err) {
		err = p.db.Insert(ctx, collection, req.ID, docdb.WithArgsStringified(doc))
	}

	if err != nil && docdb.IsDuplicateKey(err) {
		err = nil
	}

	if p.metrics != nil {
		if err == nil {
			p.metrics.SendSuccess.Inc()
		} else {
			p.metrics.SendFailure.Inc()
		}
	}

	return SendResult{ID: req.ID, Err: err}
}
