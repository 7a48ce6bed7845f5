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

// Package forwarder is the relay's supervisor: it wires the persistent
// queue, id generator, and sender pool together, owns the pending-ids
// index, and runs the send loop. On any unrecoverable error it sets the
// shutdown latch, stops the sender pool, and returns — external process
// supervision is expected to restart the relay from a clean boot sequence.
package forwarder

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rtbhouse/log-relay/id"
	"github.com/rtbhouse/log-relay/logger"
	loglvl "github.com/rtbhouse/log-relay/logger/level"
	"github.com/rtbhouse/log-relay/metrics"
	"github.com/rtbhouse/log-relay/queue"
	"github.com/rtbhouse/log-relay/sender"

	liberr "github.com/rtbhouse/log-relay/errors"
)

const (
	errBoot liberr.CodeError = liberr.MinPkgForwarder + iota
	errSocketGone
	errWorkerDied
	errSendFailed
)

func init() {
	liberr.RegisterMessage(errBoot, "forwarder: boot failed")
	liberr.RegisterMessage(errSocketGone, "forwarder: socket file disappeared")
	liberr.RegisterMessage(errWorkerDied, "forwarder: sender worker died")
	liberr.RegisterMessage(errSendFailed, "forwarder: send failed")
}

// Config tunes the supervisor's batching and heartbeat behavior.
type Config struct {
	// Workers is the sender pool size, N in the specification (default 8).
	Workers int
	// SocketPath is watched between batches; its disappearance is fatal.
	SocketPath string
	// PendingPopTimeout bounds how long a single PopBatch call waits for
	// its first id before returning an undersized (possibly empty) batch.
	PendingPopTimeout time.Duration
	// MaxBatchesPerTick caps how many batches the send loop drains before
	// yielding back to the heartbeat/throughput report, mirroring the
	// original Python forwarder's per-call batch cap.
	MaxBatchesPerTick int
	// ReportInterval is how often throughput and pending depth are logged.
	ReportInterval time.Duration
}

// DefaultConfig returns the specification's stated defaults.
func DefaultConfig() Config {
	return Config{
		Workers:           8,
		SocketPath:        "/tmp/rtbh-log-relay.socket",
		PendingPopTimeout: 100 * time.Millisecond,
		MaxBatchesPerTick: 100,
		ReportInterval:    5 * time.Second,
	}
}

// Supervisor orchestrates the persistent queue, id generator, and sender
// pool, per component E of the design.
type Supervisor struct {
	cfg     Config
	q       *queue.Queue
	gen     *id.Generator
	pool    *sender.Pool
	pending *pendingQueue
	log     logger.FuncLog
	metrics *metrics.Collectors

	watcher    *fsnotify.Watcher
	socketGone int32

	sent    int64
	lastLog time.Time
}

// New builds a Supervisor. The caller has already opened q and constructed
// gen and pool; New does not start the pool. m may be nil, in which case
// pending depth is not exported to prometheus.
func New(cfg Config, q *queue.Queue, gen *id.Generator, pool *sender.Pool, log logger.FuncLog, m *metrics.Collectors) *Supervisor {
	return &Supervisor{
		cfg:     cfg,
		q:       q,
		gen:     gen,
		pool:    pool,
		pending: newPendingQueue(),
		log:     log,
		metrics: m,
	}
}

// Boot starts the sender pool and re-seeds the pending-ids buffer by
// scanning the persistent queue, so a restart recovers every unsent entry.
func (s *Supervisor) Boot() error {
	s.pool.Start()
	s.watchSocket()

	ids, err := s.q.ScanAll()
	if err != nil {
		return errBoot.Error(err)
	}

	for _, id := range ids {
		s.pending.Push(id)
	}

	if s.log != nil {
		s.log().Info("boot scan complete", logger.Fields{"recovered": len(ids)})
	}

	return nil
}

// watchSocket arms an fsnotify watch on the socket file's parent directory
// so checkSocket notices a removal the moment it happens instead of waiting
// for its next poll. A watch failure (directory missing, inotify instance
// limit) is logged and otherwise ignored: the os.Stat poll in checkSocket
// still catches the same condition, just with up to one tick of latency.
func (s *Supervisor) watchSocket() {
	if s.cfg.SocketPath == "" {
		return
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		if s.log != nil {
			s.log().Warning("fsnotify watcher unavailable, falling back to polling", logger.Fields{"error": err.Error()})
		}
		return
	}

	if err := w.Add(filepath.Dir(s.cfg.SocketPath)); err != nil {
		_ = w.Close()
		if s.log != nil {
			s.log().Warning("fsnotify watch failed, falling back to polling", logger.Fields{"error": err.Error()})
		}
		return
	}

	s.watcher = w
	go s.watchLoop()
}

func (s *Supervisor) watchLoop() {
	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != s.cfg.SocketPath {
				continue
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				atomic.StoreInt32(&s.socketGone, 1)
			}
		case _, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Ingest is invoked by the frame server on every accepted frame. It assigns
// a fresh id, persists the payload, and enqueues the id for dispatch. Only
// after Ingest returns without error may the caller ack the peer.
func (s *Supervisor) Ingest(payload []byte) (string, error) {
	newID := s.gen.Next()

	if err := s.q.Put(newID, payload); err != nil {
		return "", err
	}

	s.pending.Push(newID)
	if s.metrics != nil {
		s.metrics.PendingDepth.Set(float64(s.pending.Len()))
	}
	return newID, nil
}

// PendingDepth reports the current size of the pending-ids buffer.
func (s *Supervisor) PendingDepth() int {
	return s.pending.Len()
}

// Run executes the send loop until a fatal error occurs (worker death, send
// error, or the socket file vanishing), or stop is closed for a clean exit
// requested by the caller (e.g. during tests).
func (s *Supervisor) Run(stop <-chan struct{}) error {
	s.lastLog = time.Now()
	defer s.closeWatcher()

	for {
		select {
		case <-stop:
			s.pool.Shutdown()
			s.pool.Wait()
			return nil
		default:
		}

		for tick := 0; tick < s.cfg.MaxBatchesPerTick; tick++ {
			batch := s.pending.PopBatch(s.cfg.Workers, s.cfg.PendingPopTimeout)
			if len(batch) == 0 {
				break
			}

			if err := s.sendBatch(batch); err != nil {
				s.pool.Shutdown()
				s.pool.Wait()
				return err
			}
		}

		if err := s.checkSocket(); err != nil {
			s.pool.Shutdown()
			s.pool.Wait()
			return err
		}

		s.reportThroughput()
	}
}

func (s *Supervisor) closeWatcher() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
}

func (s *Supervisor) sendBatch(batch []string) error {
	dispatched := 0
	for _, bid := range batch {
		payload, err := s.q.Get(bid)
		if err != nil {
			// The entry vanished between scan and send; nothing to retry.
			if s.log != nil {
				s.log().Warning("pending id missing from queue", logger.Fields{"id": bid})
			}
			continue
		}
		s.pool.Work() <- sender.SendRequest{ID: bid, Payload: payload}
		dispatched++
	}

	var firstErr error

	for i := 0; i < dispatched; i++ {
		if s.pool.AnyDead() {
			return errWorkerDied.Error()
		}

		var res sender.SendResult
		for waiting := true; waiting; {
			select {
			case res = <-s.pool.Results():
				waiting = false
			case <-time.After(pollInterval):
				if s.pool.AnyDead() {
					return errWorkerDied.Error()
				}
			}
		}
		if res.Err == nil {
			_ = s.q.Delete(res.ID)
			s.sent++
			continue
		}

		s.pending.Push(res.ID)
		if firstErr == nil {
			firstErr = res.Err
			if s.log != nil {
				s.log().Entry(loglvl.ErrorLevel, "send failed, will retry").
					Field("id", res.ID).ErrorData(res.Err).Log()
			}
		}
	}

	if s.metrics != nil {
		s.metrics.PendingDepth.Set(float64(s.pending.Len()))
	}

	if firstErr != nil {
		return errSendFailed.Error(firstErr)
	}

	return nil
}

func (s *Supervisor) checkSocket() error {
	if s.cfg.SocketPath == "" {
		return nil
	}
	if atomic.LoadInt32(&s.socketGone) == 1 {
		return errSocketGone.Error()
	}
	if _, err := os.Stat(s.cfg.SocketPath); err != nil {
		return errSocketGone.Error(err)
	}
	return nil
}

func (s *Supervisor) reportThroughput() {
	if s.log == nil {
		return
	}
	if time.Since(s.lastLog) < s.cfg.ReportInterval {
		return
	}

	s.log().Info("throughput", logger.Fields{
		"sent_total":   s.sent,
		"pending_depth": s.PendingDepth(),
	})
	s.lastLog = time.Now()
}
