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

// Package docdb is an HTTP client for the relay's remote document database:
// one named collection per event kind, keyed inserts, and two backend error
// signals the sender pool treats specially (duplicate key, serialization
// failure on non-finite numbers).
package docdb

import (
	"bytes"
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/hashicorp/go-uuid"

	liberr "github.com/rtbhouse/log-relay/errors"
)

// Backend error codes as reported by the remote document database.
const (
	CodeDuplicateKey        = 1210
	CodeSerializationFailed = 600
)

const (
	errRequestBuild liberr.CodeError = liberr.MinPkgDocDB + iota
	errRequestSend
	errDecodeResponse
	errBackend
)

func init() {
	liberr.RegisterMessage(errRequestBuild, "docdb: failed to build request")
	liberr.RegisterMessage(errRequestSend, "docdb: request failed")
	liberr.RegisterMessage(errDecodeResponse, "docdb: failed to decode response")
	liberr.RegisterMessage(errBackend, "docdb: backend error")
}

// BackendError carries the structured error a document database returns in
// its response body.
type BackendError struct {
	Code    int
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("docdb backend error %d: %s", e.Code, e.Message)
}

// IsDuplicateKey reports whether err is a duplicate-key backend signal.
func IsDuplicateKey(err error) bool {
	be, ok := asBackendError(err)
	return ok && be.Code == CodeDuplicateKey
}

// IsSerializationFailed reports whether err is a serialization-failure
// backend signal, raised when a document contains non-finite numbers.
func IsSerializationFailed(err error) bool {
	be, ok := asBackendError(err)
	return ok && be.Code == CodeSerializationFailed
}

func asBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if goerrors.As(err, &be) {
		return be, true
	}
	return nil, false
}

type backendResponse struct {
	Error    bool   `json:"error"`
	ErrorNum int    `json:"errorNum"`
	ErrorMsg string `json:"errorMessage"`
}

// Config configures a Client.
type Config struct {
	BaseURL    string
	Database   string
	Timeout    time.Duration
	RetryMax   int
	BearerAuth string
}

// Client inserts documents into the remote document database over HTTP,
// retrying transient failures via the underlying retryablehttp client.
type Client struct {
	http *retryablehttp.Client
	cfg  Config
}

// New builds a Client. logger, if non-nil, receives the retryable client's
// own request/retry logging.
func New(cfg Config, logger retryablehttp.LeveledLogger) *Client {
	hc := retryablehttp.NewClient()
	hc.Logger = logger
	if cfg.RetryMax > 0 {
		hc.RetryMax = cfg.RetryMax
	}
	if cfg.Timeout > 0 {
		hc.HTTPClient.Timeout = cfg.Timeout
	}

	return &Client{http: hc, cfg: cfg}
}

// Insert stores doc under key in collection, returning a bare *BackendError
// when the backend itself reports a structured failure (duplicate key,
// serialization failure), or a liberr-wrapped build, transport or decode
// error otherwise.
func (c *Client) Insert(ctx context.Context, collection, key string, doc map[string]interface{}) error {
	withKey := make(map[string]interface{}, len(doc)+1)
	for k, v := range doc {
		withKey[k] = v
	}
	withKey["_key"] = key

	body, err := json.Marshal(withKey)
	if err != nil {
		return errRequestBuild.Error(err)
	}

	url := fmt.Sprintf("%s/_db/%s/_api/document/%s?silent=true", c.cfg.BaseURL, c.cfg.Database, collection)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errRequestBuild.Error(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.BearerAuth != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.BearerAuth)
	}
	if reqID, err := uuid.GenerateUUID(); err == nil {
		req.Header.Set("X-Request-Id", reqID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errRequestSend.Error(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var br backendResponse
	if decErr := json.NewDecoder(resp.Body).Decode(&br); decErr != nil {
		return errDecodeResponse.Error(decErr)
	}

	return &BackendError{Code: br.ErrorNum, Message: br.ErrorMsg}
}

// WithArgsStringified returns a copy of doc with its "args" field replaced
// by its string form, the retry path taken on a serialization failure.
func WithArgsStringified(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	if args, ok := out["args"]; ok {
		out["args"] = fmt.Sprintf("%v", args)
	}
	return out
}
