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

//go:build linux

package server

import (
	"net"

	"golang.org/x/sys/unix"
)

// peerCredential identifies the local process on the other end of a
// unix-domain socket connection, read once per connection for logging.
type peerCredential struct {
	PID int32
	UID uint32
	GID uint32
}

func peerCredentials(conn net.Conn) (peerCredential, error) {
	uc, ok := conn.(*net.UnixConn)
	if !ok {
		return peerCredential{}, errNotUnixConn
	}

	raw, err := uc.SyscallConn()
	if err != nil {
		return peerCredential{}, err
	}

	var cred *unix.Ucred
	var sockErr error

	err = raw.Control(func(fd uintptr) {
		cred, sockErr = unix.GetsockoptUcred(int(fd), unix.SOL_SOCKET, unix.SO_PEERCRED)
	})
	if err != nil {
		return peerCredential{}, err
	}
	if sockErr != nil {
		return peerCredential{}, sockErr
	}

	return peerCredential{PID: cred.Pid, UID: cred.Uid, GID: cred.Gid}, nil
}
