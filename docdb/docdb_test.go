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

package docdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Insert_Success(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var doc map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&doc)
		gotKey, _ = doc["_key"].(string)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Database: "relay", RetryMax: 0}, nil)
	err := c.Insert(context.Background(), "messages", "abc-123", map[string]interface{}{"message": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "abc-123", gotKey)
}

func TestClient_Insert_DuplicateKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(backendResponse{Error: true, ErrorNum: CodeDuplicateKey, ErrorMsg: "unique constraint violated"})
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Database: "relay", RetryMax: 0}, nil)
	err := c.Insert(context.Background(), "messages", "dup", map[string]interface{}{"message": "hi"})
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
	assert.False(t, IsSerializationFailed(err))
}

func TestClient_Insert_SerializationFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(backendResponse{Error: true, ErrorNum: CodeSerializationFailed, ErrorMsg: "serialization failed"})
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, Database: "relay", RetryMax: 0}, nil)
	err := c.Insert(context.Background(), "messages", "bad", map[string]interface{}{"args": 1})
	require.Error(t, err)
	assert.True(t, IsSerializationFailed(err))
}

func TestWithArgsStringified(t *testing.T) {
	doc := map[string]interface{}{"args": []interface{}{1.0, "x"}, "message": "hi"}
	out := WithArgsStringified(doc)
	_, isString := out["args"].(string)
	assert.True(t, isString)
	assert.Equal(t, "hi", out["message"])
}
