package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/spf13/cobra"

	"github.com/fleetops/docdb-remediator/internal/daemon"
	"github.com/fleetops/docdb-remediator/internal/source"
	internaltelemetry "github.com/fleetops/docdb-remediator/internal/telemetry"
	"github.com/fleetops/docdb-remediator/telemetry"
)

var daemonMetricsPort int

// daemonCmd represents the daemon command
var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the remediation daemon",
	Long: `Run the remediator in daemon mode.

The daemon long-polls the compliance event queue, runs one remediation
workflow per non-compliance event, and publishes an entry and exit
notification for every execution.

Features:
- SQS long-poll event source with at-least-once handling
- Prometheus metrics on /metrics endpoint
- Health checks on /health, /-/healthy, /-/ready
- Append-only audit journal of every workflow stage
- Graceful shutdown on SIGTERM/SIGINT`,
	Example: `  remediator daemon                           # Run with remediator.toml
  remediator daemon --config /etc/remediator.toml
  remediator daemon --metrics-port 9090       # Custom metrics port`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)

	daemonCmd.Flags().IntVar(&daemonMetricsPort, "metrics-port", 2112, "Metrics HTTP server port")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.SQS.QueueURL == "" {
		return fmt.Errorf("sqs.queue_url is required in daemon mode")
	}

	logger := telemetry.NewLogger("docdb-remediator")
	ctx := context.Background()

	if cfg.OTEL.Endpoint != "" {
		provider, err := internaltelemetry.NewProvider(ctx, cfg.OTEL)
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}
		defer func() { _ = provider.Shutdown(context.Background()) }()
	}

	engine, journal, err := buildEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = journal.Close() }()

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWS.Region)}
	if cfg.AWS.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.AWS.Profile))
	}
	awscfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	src := source.New(sqs.NewFromConfig(awscfg), engine, logger, source.Options{
		QueueURL:    cfg.SQS.QueueURL,
		WaitSeconds: cfg.SQS.WaitSeconds,
		BatchSize:   cfg.SQS.BatchSize,
	})

	logger.Info().
		Str("region", cfg.AWS.Region).
		Str("queue_url", cfg.SQS.QueueURL).
		Int("metrics_port", daemonMetricsPort).
		Msg("remediator starting")

	d := daemon.New(src, logger, daemon.Config{MetricsPort: daemonMetricsPort})
	return d.Run(ctx)
}
