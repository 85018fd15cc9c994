package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/fleetops/docdb-remediator/types"
)

// WorkflowMetrics records workflow executions as OTEL metrics
type WorkflowMetrics struct {
	meter             metric.Meter
	executionsTotal   metric.Int64Counter
	remediationsTotal metric.Int64Counter
	notificationsSent metric.Int64Counter
	failuresTotal     metric.Int64Counter
}

// NewWorkflowMetrics creates the workflow metrics set
func NewWorkflowMetrics() (*WorkflowMetrics, error) {
	meter := otel.Meter("remediator")

	executions, err := meter.Int64Counter(
		"remediator_executions_total",
		metric.WithDescription("Total workflow executions by outcome"),
		metric.WithUnit("{execution}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}

	remediations, err := meter.Int64Counter(
		"remediator_remediations_total",
		metric.WithDescription("Total remediations applied by directive"),
		metric.WithUnit("{remediation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}

	notifications, err := meter.Int64Counter(
		"remediator_notifications_sent_total",
		metric.WithDescription("Total notifications published"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}

	failures, err := meter.Int64Counter(
		"remediator_workflow_failures_total",
		metric.WithDescription("Total workflow executions that failed"),
		metric.WithUnit("{execution}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}

	return &WorkflowMetrics{
		meter:             meter,
		executionsTotal:   executions,
		remediationsTotal: remediations,
		notificationsSent: notifications,
		failuresTotal:     failures,
	}, nil
}

// RecordOutcome counts one completed execution
func (m *WorkflowMetrics) RecordOutcome(ctx context.Context, outcome types.Outcome) {
	m.executionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", string(outcome.Kind)),
	))
	if outcome.Kind == types.OutcomeExecuted {
		m.remediationsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("directive", string(outcome.Directive)),
		))
	}
}

// RecordNotification counts one published notification
func (m *WorkflowMetrics) RecordNotification(ctx context.Context) {
	m.notificationsSent.Add(ctx, 1)
}

// RecordFailure counts one failed execution
func (m *WorkflowMetrics) RecordFailure(ctx context.Context, rule string) {
	m.failuresTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("config_rule", rule),
	))
}
