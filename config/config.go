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

// Package config loads and validates the relay's configuration: one flat
// struct covering the socket, queue, sender pool, and remote document
// database, read via viper (file, environment, and flags) and checked with
// go-playground/validator before anything else starts.
package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	liberr "github.com/rtbhouse/log-relay/errors"
)

const (
	errRead liberr.CodeError = liberr.MinPkgConfig + iota
	errUnmarshal
	errValidate
)

func init() {
	liberr.RegisterMessage(errRead, "config: failed to read configuration")
	liberr.RegisterMessage(errUnmarshal, "config: failed to decode configuration")
	liberr.RegisterMessage(errValidate, "config: invalid configuration")
}

// Config is the relay's complete runtime configuration.
type Config struct {
	// SocketPath is the unix-domain socket the frame server listens on.
	SocketPath string `mapstructure:"socket_path" validate:"required"`

	// QueuePath is the directory backing the embedded persistent queue.
	QueuePath string `mapstructure:"queue_path" validate:"required"`

	// Workers is the sender pool size, N in the specification.
	Workers int `mapstructure:"workers" validate:"required,min=1,max=256"`

	// MaxBatchesPerTick caps batches drained per send-loop tick before
	// yielding to the heartbeat/throughput report.
	MaxBatchesPerTick int `mapstructure:"max_batches_per_tick" validate:"required,min=1"`

	// PendingPopTimeout bounds how long the send loop waits for the first
	// id of a batch before proceeding with whatever is available.
	PendingPopTimeout time.Duration `mapstructure:"pending_pop_timeout" validate:"required"`

	// ReportInterval is how often throughput/pending-depth are logged.
	ReportInterval time.Duration `mapstructure:"report_interval" validate:"required"`

	// DocDB is the remote document database's connection settings.
	DocDB DocDBConfig `mapstructure:"docdb" validate:"required"`

	// Metrics is the admin HTTP server's settings.
	Metrics MetricsConfig `mapstructure:"metrics"`

	// LogLevel is the minimal level emitted by the structured logger.
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=panic fatal error warning info debug"`

	// LogFile, when non-empty, enables a second JSON-line sink.
	LogFile string `mapstructure:"log_file"`
}

// DocDBConfig configures the remote document database HTTP client.
type DocDBConfig struct {
	BaseURL    string        `mapstructure:"base_url" validate:"required,url"`
	Database   string        `mapstructure:"database" validate:"required"`
	BearerAuth string        `mapstructure:"bearer_auth"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryMax   int           `mapstructure:"retry_max" validate:"min=0"`
}

// MetricsConfig configures the prometheus/gin admin server.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}

// Default returns the specification's stated defaults.
func Default() Config {
	return Config{
		SocketPath:        "/tmp/rtbh-log-relay.socket",
		QueuePath:         "/tmp/rtbh-log-relay.db",
		Workers:           8,
		MaxBatchesPerTick: 100,
		PendingPopTimeout: 100 * time.Millisecond,
		ReportInterval:    5 * time.Second,
		DocDB: DocDBConfig{
			Timeout:  30 * time.Second,
			RetryMax: 4,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Listen:  "127.0.0.1:9090",
		},
		LogLevel: "info",
	}
}

// Load reads configuration from path (if non-empty), environment variables
// prefixed RTBH_LOG_RELAY_, and flags bound to v, layered over Default(),
// then validates the result.
func Load(path string, v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	def := Default()
	v.SetDefault("socket_path", def.SocketPath)
	v.SetDefault("queue_path", def.QueuePath)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("max_batches_per_tick", def.MaxBatchesPerTick)
	v.SetDefault("pending_pop_timeout", def.PendingPopTimeout)
	v.SetDefault("report_interval", def.ReportInterval)
	v.SetDefault("docdb.timeout", def.DocDB.Timeout)
	v.SetDefault("docdb.retry_max", def.DocDB.RetryMax)
	v.SetDefault("metrics.enabled", def.Metrics.Enabled)
	v.SetDefault("metrics.listen", def.Metrics.Listen)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix("rtbh_log_relay")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errRead.Error(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errUnmarshal.Error(err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return Config{}, errValidate.Error(err)
	}

	return cfg, nil
}
