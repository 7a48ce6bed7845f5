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

// Package queue is the relay's persistent queue: an embedded, crash-safe,
// ordered key/value store on local disk, backed by nutsdb. A successful
// Put return implies the record survives process death.
package queue

import (
	"sort"
	"strings"

	"github.com/nutsdb/nutsdb"

	liberr "github.com/rtbhouse/log-relay/errors"
)

const bucket = "relay_queue"

const (
	errOpen liberr.CodeError = liberr.MinPkgQueue + iota
	errPut
	errGet
	errDelete
	errScan
	errNotFound
	errClose
)

func init() {
	liberr.RegisterMessage(errOpen, "queue: open failed")
	liberr.RegisterMessage(errPut, "queue: put failed")
	liberr.RegisterMessage(errGet, "queue: get failed")
	liberr.RegisterMessage(errDelete, "queue: delete failed")
	liberr.RegisterMessage(errScan, "queue: scan failed")
	liberr.RegisterMessage(errNotFound, "queue: id not found")
	liberr.RegisterMessage(errClose, "queue: close failed")
}

// Queue is the persistent, ordered key/value store backing the relay.
// All methods are safe for concurrent use, though per §5 the supervisor is
// the store's only writer; workers never touch it directly.
type Queue struct {
	db *nutsdb.DB
}

// Open opens (creating if missing) the store at dir.
func Open(dir string) (*Queue, error) {
	opt := nutsdb.DefaultOptions
	opt.Dir = dir
	opt.EntryIdxMode = nutsdb.HintKeyValAndRAMIdxMode

	db, err := nutsdb.Open(opt)
	if err != nil {
		return nil, errOpen.Error(err)
	}

	q := &Queue{db: db}

	if err := q.db.Update(func(tx *nutsdb.Tx) error {
		err := tx.NewBucket(nutsdb.DataStructureBTree, bucket)
		if err != nil && !strings.Contains(strings.ToLower(err.Error()), "exist") {
			return err
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, errOpen.Error(err)
	}

	return q, nil
}

// Put stores payload under id. A non-error return guarantees the record is
// durable: the frame server acks the peer only after this call returns.
func (q *Queue) Put(id string, payload []byte) error {
	err := q.db.Update(func(tx *nutsdb.Tx) error {
		return tx.Put(bucket, []byte(id), payload, 0)
	})
	if err != nil {
		return errPut.Error(err)
	}
	return nil
}

// Get returns the payload stored under id.
func (q *Queue) Get(id string) ([]byte, error) {
	var payload []byte

	err := q.db.View(func(tx *nutsdb.Tx) error {
		v, err := tx.Get(bucket, []byte(id))
		if err != nil {
			return err
		}
		payload = append([]byte(nil), v.Value...)
		return nil
	})

	if err != nil {
		if isNotFound(err) {
			return nil, errNotFound.Error(err)
		}
		return nil, errGet.Error(err)
	}

	return payload, nil
}

// isNotFound matches nutsdb's not-found and empty-bucket sentinels by
// message rather than by identity, since their exact exported names have
// drifted across nutsdb releases.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not found") || strings.Contains(s, "not exist") || strings.Contains(s, "empty")
}

// Delete removes id from the store. Called by the supervisor only after a
// successful remote insert or a remote duplicate-key signal.
func (q *Queue) Delete(id string) error {
	err := q.db.Update(func(tx *nutsdb.Tx) error {
		return tx.Delete(bucket, []byte(id))
	})
	if err != nil {
		return errDelete.Error(err)
	}
	return nil
}

// ScanAll returns every id currently stored, in lexicographic (and thus
// chronological-per-process) order. Used once at boot to re-seed the
// pending-ids buffer after a restart.
func (q *Queue) ScanAll() ([]string, error) {
	var ids []string

	err := q.db.View(func(tx *nutsdb.Tx) error {
		entries, err := tx.GetAll(bucket)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return err
		}
		for _, e := range entries {
			ids = append(ids, string(e.Key))
		}
		return nil
	})

	if err != nil {
		return nil, errScan.Error(err)
	}

	sort.Strings(ids)
	return ids, nil
}

// Close flushes and closes the underlying store.
func (q *Queue) Close() error {
	if err := q.db.Close(); err != nil {
		return errClose.Error(err)
	}
	return nil
}
