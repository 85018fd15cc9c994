// Package daemon runs the long-lived remediation loop.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fleetops/docdb-remediator/internal/source"
	"github.com/fleetops/docdb-remediator/telemetry"
)

// Config holds daemon configuration
type Config struct {
	MetricsPort int
}

// Daemon supervises the event source and the metrics endpoint
type Daemon struct {
	source      *source.Source
	logger      *telemetry.Logger
	metricsPort int
	startTime   time.Time
}

// New creates a daemon instance
func New(src *source.Source, logger *telemetry.Logger, config Config) *Daemon {
	return &Daemon{
		source:      src,
		logger:      logger,
		metricsPort: config.MetricsPort,
		startTime:   time.Now(),
	}
}

// Run blocks until a signal arrives or an actor fails
func (d *Daemon) Run(ctx context.Context) error {
	var group run.Group

	// OS signal handling
	group.Add(run.SignalHandler(ctx, syscall.SIGINT, syscall.SIGTERM))

	// Event source loop
	sourceCtx, cancelSource := context.WithCancel(ctx)
	group.Add(
		func() error {
			return d.source.Run(sourceCtx)
		},
		func(error) {
			cancelSource()
		},
	)

	// Metrics and health endpoint
	server := d.metricsServer()
	group.Add(
		func() error {
			return server.ListenAndServe()
		},
		func(error) {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		},
	)

	err := group.Run()

	var signalErr run.SignalError
	if errors.As(err, &signalErr) || errors.Is(err, context.Canceled) {
		d.logger.Info().Msg("daemon stopped")
		return nil
	}
	return err
}

func (d *Daemon) metricsServer() *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", d.handleHealth)
	mux.HandleFunc("/-/healthy", d.handleHealth)
	mux.HandleFunc("/-/ready", d.handleHealth)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", d.metricsPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (d *Daemon) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "ok uptime=%ds pid=%d\n", int64(time.Since(d.startTime).Seconds()), os.Getpid())
}
