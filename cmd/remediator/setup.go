package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fleetops/docdb-remediator/internal/config"
	"github.com/fleetops/docdb-remediator/providers"
	awsprovider "github.com/fleetops/docdb-remediator/providers/aws"
	"github.com/fleetops/docdb-remediator/remedy"
	"github.com/fleetops/docdb-remediator/resolver"
	"github.com/fleetops/docdb-remediator/telemetry"
	"github.com/fleetops/docdb-remediator/wal"
	"github.com/fleetops/docdb-remediator/workflow"
)

// loadConfig reads the config file and applies the configured log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	zerolog.SetGlobalLevel(level)

	return cfg, nil
}

// buildEngine wires the provider, resolver, actions, notifier, journal and
// metrics into a workflow engine. The returned journal must be closed by
// the caller.
func buildEngine(ctx context.Context, cfg *config.Config, logger *telemetry.Logger) (*workflow.Engine, *wal.Journal, error) {
	plane, err := providers.GetProvider(ctx, "aws", providers.ProviderConfig{
		Region:  cfg.AWS.Region,
		Profile: cfg.AWS.Profile,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create control plane: %w", err)
	}

	notifier, err := awsprovider.NewSNSNotifier(ctx, cfg.AWS.Region, cfg.SNS.TopicARN)
	if err != nil {
		return nil, nil, fmt.Errorf("create notifier: %w", err)
	}

	res := resolver.New(plane)
	actions := []remedy.Action{
		remedy.NewDeletionProtection(res, plane),
		remedy.NewParameterGroup(res, plane, cfg.Remediation.DesiredParameterGroup),
		remedy.NewBackupRetention(res, plane, cfg.Remediation.DesiredBackupRetentionDays),
	}

	journal, err := wal.Open(cfg.Journal.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}

	metrics, err := telemetry.NewWorkflowMetrics()
	if err != nil {
		_ = journal.Close()
		return nil, nil, fmt.Errorf("create metrics: %w", err)
	}

	engine := workflow.NewEngine(notifier, actions, workflow.Options{
		Journal: journal,
		Logger:  logger,
		Metrics: metrics,
	})

	return engine, journal, nil
}
