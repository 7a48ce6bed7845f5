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

// Package metrics exposes the relay's runtime counters to prometheus and
// serves a small gin admin API (/healthz, /metrics, /stats).
package metrics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors groups every prometheus metric the relay registers.
type Collectors struct {
	FramesAccepted prometheus.Counter
	SendSuccess    prometheus.Counter
	SendFailure    prometheus.Counter
	PendingDepth   prometheus.Gauge
	WorkerAlive    prometheus.Gauge
}

// NewCollectors constructs and registers every collector against reg.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		FramesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rtbh_log_relay",
			Name:      "frames_accepted_total",
			Help:      "Frames accepted and durably queued by the frame server.",
		}),
		SendSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rtbh_log_relay",
			Name:      "send_success_total",
			Help:      "Queue entries successfully delivered to the remote document database.",
		}),
		SendFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rtbh_log_relay",
			Name:      "send_failure_total",
			Help:      "Send attempts that returned a non-recoverable error.",
		}),
		PendingDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rtbh_log_relay",
			Name:      "pending_depth",
			Help:      "Current size of the in-memory pending-ids buffer.",
		}),
		WorkerAlive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rtbh_log_relay",
			Name:      "workers_alive",
			Help:      "Number of sender pool workers currently alive.",
		}),
	}

	reg.MustRegister(c.FramesAccepted, c.SendSuccess, c.SendFailure, c.PendingDepth, c.WorkerAlive)
	return c
}

// StatsSource is queried by the /stats endpoint for a point-in-time snapshot.
type StatsSource interface {
	PendingDepth() int
}

// Server is the relay's admin HTTP server.
type Server struct {
	engine *gin.Engine
	addr   string
}

// NewServer builds the admin server, wiring /healthz, /metrics (served from
// reg, not the global default registry), and /stats (backed by src).
func NewServer(addr string, reg *prometheus.Registry, src StatsSource) *Server {
	gin.SetMode(gin.ReleaseMode)
	e := gin.New()
	e.Use(gin.Recovery())

	e.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	e.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pending_depth": src.PendingDepth()})
	})

	e.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return &Server{engine: e, addr: addr}
}

// ListenAndServe blocks serving the admin API on addr.
func (s *Server) ListenAndServe() error {
	return s.engine.Run(s.addr)
}
