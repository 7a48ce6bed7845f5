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

// Command relay runs the local log relay daemon: it accepts frames over a
// unix-domain socket, persists them durably, and forwards them to the
// remote document database through a pool of isolated sender workers.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rtbhouse/log-relay/config"
	"github.com/rtbhouse/log-relay/docdb"
	"github.com/rtbhouse/log-relay/forwarder"
	"github.com/rtbhouse/log-relay/id"
	"github.com/rtbhouse/log-relay/logger"
	loglvl "github.com/rtbhouse/log-relay/logger/level"
	"github.com/rtbhouse/log-relay/metrics"
	"github.com/rtbhouse/log-relay/queue"
	"github.com/rtbhouse/log-relay/sender"
	"github.com/rtbhouse/log-relay/server"
	"github.com/rtbhouse/log-relay/version"
)

var (
	buildDate    = "1970-01-01T00:00:00Z"
	buildCommit  = "unknown"
	buildRelease = "dev"
)

var cfgFile string

// anchor pins the package path version.NewVersion derives via reflection.
type anchor struct{}

func versionInfo() version.Version {
	return version.NewVersion(
		version.License_MIT,
		"log-relay",
		"Restart-safe local log relay daemon",
		buildDate,
		buildCommit,
		buildRelease,
		"RTB House",
		"relay",
		anchor{},
		1, // reflection reports this package's path as "main"; trimming it leaves "."
	)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "relay",
		Short:   "Local log relay daemon",
		Version: buildRelease,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelay()
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the relay configuration file")
	cmd.SetVersionTemplate(versionInfo().String() + "\n")

	return cmd
}

func main() {
	if err := version.CheckGo(">= 1.21"); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("relay: %s", err.Error()))
		os.Exit(1)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("relay: %s", err.Error()))
		os.Exit(1)
	}
}

func runRelay() error {
	cfg, err := config.Load(cfgFile, viper.New())
	if err != nil {
		return err
	}

	log := logger.New(loglvl.Parse(cfg.LogLevel))
	if cfg.LogFile != "" {
		if err := log.SetOptions(&logger.Options{Stdout: true, FilePath: cfg.LogFile}); err != nil {
			return err
		}
	}
	funcLog := func() logger.Logger { return log }

	color.Cyan("relay: %s", versionInfo().String())

	q, err := queue.Open(cfg.QueuePath)
	if err != nil {
		return err
	}
	defer q.Close()

	gen, err := id.New()
	if err != nil {
		return err
	}

	dbClient := docdb.New(docdb.Config{
		BaseURL:    cfg.DocDB.BaseURL,
		Database:   cfg.DocDB.Database,
		Timeout:    cfg.DocDB.Timeout,
		RetryMax:   cfg.DocDB.RetryMax,
		BearerAuth: cfg.DocDB.BearerAuth,
	}, logger.NewHCLog(funcLog))

	reg := prometheus.NewRegistry()
	collectors := metrics.NewCollectors(reg)

	pool := sender.New(cfg.Workers, dbClient, funcLog, collectors)

	sup := forwarder.New(forwarder.Config{
		Workers:           cfg.Workers,
		SocketPath:        cfg.SocketPath,
		PendingPopTimeout: cfg.PendingPopTimeout,
		MaxBatchesPerTick: cfg.MaxBatchesPerTick,
		ReportInterval:    cfg.ReportInterval,
	}, q, gen, pool, funcLog, collectors)

	if err := sup.Boot(); err != nil {
		return err
	}

	srv, err := server.New(cfg.SocketPath, func(payload []byte) error {
		_, err := sup.Ingest(payload)
		return err
	}, funcLog, collectors)
	if err != nil {
		return err
	}
	log.Info("frame server listening", logger.Fields{"socket": cfg.SocketPath})

	if cfg.Metrics.Enabled {
		admin := metrics.NewServer(cfg.Metrics.Listen, reg, sup)
		go func() {
			if err := admin.ListenAndServe(); err != nil {
				log.Warning("metrics server exited", logger.Fields{"error": err.Error()})
			}
		}()
	}

	stop := make(chan struct{})
	runErr := make(chan error, 1)
	go func() { runErr <- sup.Run(stop) }()

	go func() {
		if err := srv.Serve(); err != nil {
			log.Debug("frame server stopped", logger.Fields{"error": err.Error()})
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sig:
		close(stop)
		_ = srv.Close()
		return <-runErr
	case err := <-runErr:
		_ = srv.Close()
		return err
	}
}
