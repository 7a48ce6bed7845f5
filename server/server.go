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

// Package server is the relay's frame server: it listens on a unix-domain
// socket, serves each connection on its own goroutine, and for every
// accepted frame calls back into the supervisor before writing the ack.
package server

import (
	goerrors "errors"
	"net"
	"os"
	"sync"

	"github.com/rtbhouse/log-relay/frame"
	"github.com/rtbhouse/log-relay/logger"
	"github.com/rtbhouse/log-relay/metrics"

	liberr "github.com/rtbhouse/log-relay/errors"
)

// errNotUnixConn is returned by peerCredentials when conn is not a
// *net.UnixConn, or on platforms without SO_PEERCRED support.
var errNotUnixConn = goerrors.New("server: not a unix socket connection")

const (
	errListen liberr.CodeError = liberr.MinPkgServer + iota
	errUnlink
	errChmod
)

func init() {
	liberr.RegisterMessage(errListen, "server: listen failed")
	liberr.RegisterMessage(errUnlink, "server: failed to unlink stale socket")
	liberr.RegisterMessage(errChmod, "server: failed to chmod socket")
}

// socketMode is world-accessible: this is a local host-trust model, not a
// cross-host one.
const socketMode = 0777

// Ingestor is invoked once per accepted frame, before the ack is written.
// A non-nil error aborts the connection without acking.
type Ingestor func(payload []byte) error

// Server listens on a unix-domain socket and serves accepted connections.
type Server struct {
	path    string
	ln      net.Listener
	log     logger.FuncLog
	ing     Ingestor
	metrics *metrics.Collectors

	wg sync.WaitGroup
}

// New creates a Server bound to path. It unlinks any stale socket file left
// behind by a previous run and chmods the fresh socket to world-accessible.
// m may be nil, in which case accepted frames are not counted toward
// prometheus.
func New(path string, ing Ingestor, log logger.FuncLog, m *metrics.Collectors) (*Server, error) {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return nil, errUnlink.Error(err)
		}
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, errListen.Error(err)
	}

	if err := os.Chmod(path, socketMode); err != nil {
		_ = ln.Close()
		return nil, errChmod.Error(err)
	}

	return &Server{path: path, ln: ln, log: log, ing: ing, metrics: m}, nil
}

// Serve accepts connections until the listener is closed. Each connection
// is handled on its own goroutine; handlers share nothing but Ingestor.
func (s *Server) Serve() error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return err
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(conn)
		}()
	}
}

// Close stops accepting new connections, waits for every open handler to
// return, and removes the socket file. Open connections are not closed by
// Close: a handler returns only when its peer disconnects or a read, ingest
// or ack on the connection fails.
func (s *Server) Close() error {
	err := s.ln.Close()
	s.wg.Wait()
	_ = os.Remove(s.path)
	return err
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	if s.log != nil {
		if cred, err := peerCredentials(conn); err == nil {
			s.log().Debug("connection accepted", logger.Fields{"pid": cred.PID, "uid": cred.UID})
		}
	}

	for {
		body, err := frame.ReadFrame(conn)
		if err != nil {
			if err != frame.ErrPeerClosed && s.log != nil {
				s.log().Warning("connection error", logger.Fields{"error": err.Error()})
			}
			return
		}

		if err := s.ing(body); err != nil {
			if s.log != nil {
				s.log().Error("ingest failed", logger.Fields{"error": err.Error()})
			}
			return
		}

		if s.metrics != nil {
			s.metrics.FramesAccepted.Inc()
		}

		if err := frame.WriteAck(conn); err != nil {
			return
		}
	}
}
