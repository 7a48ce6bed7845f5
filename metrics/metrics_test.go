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

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats struct{ depth int }

func (f fakeStats) PendingDepth() int { return f.depth }

func TestNewCollectors_RegistersAndIncrements(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollectors(reg)

	c.FramesAccepted.Inc()
	c.PendingDepth.Set(42)

	mf, err := reg.Gather()
	require.NoError(t, err)

	var sawFrames, sawDepth bool
	for _, fam := range mf {
		if fam.GetName() == "rtbh_log_relay_frames_accepted_total" {
			sawFrames = true
			assert.Equal(t, float64(1), fam.GetMetric()[0].GetCounter().GetValue())
		}
		if fam.GetName() == "rtbh_log_relay_pending_depth" {
			sawDepth = true
			assert.Equal(t, float64(42), fam.GetMetric()[0].GetGauge().GetValue())
		}
	}
	assert.True(t, sawFrames)
	assert.True(t, sawDepth)
}

func TestServer_HealthzAndStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollectors(reg)

	srv := NewServer("127.0.0.1:0", reg, fakeStats{depth: 7})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/stats", nil)
	w = httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pending_depth":7`)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w = httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
