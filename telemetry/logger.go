package telemetry

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fleetops/docdb-remediator/types"
)

// OTELHook adds trace and span IDs to every log entry
type OTELHook struct{}

func (h OTELHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return
	}

	e.Str("trace_id", span.SpanContext().TraceID().String())
	e.Str("span_id", span.SpanContext().SpanID().String())

	if level == zerolog.ErrorLevel {
		span.SetStatus(codes.Error, msg)
	}
}

// Logger wraps zerolog with OTEL integration
type Logger struct {
	zerolog.Logger
}

// NewLogger creates a new logger with OTEL hooks
func NewLogger(service string) *Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", service).
		Logger().
		Hook(OTELHook{})

	return &Logger{Logger: logger}
}

// WithContext returns a logger with context (for trace propagation)
func (l *Logger) WithContext(ctx context.Context) *zerolog.Logger {
	logger := l.Logger.With().Ctx(ctx).Logger()
	return &logger
}

// Convenience methods for workflow executions

func (l *Logger) LogEventReceived(ctx context.Context, event types.ComplianceEvent) {
	l.WithContext(ctx).Info().
		Str("config_rule", event.ConfigRuleName).
		Str("resource_id", event.ResourceID).
		Str("resource_type", string(event.ResourceType)).
		Str("compliance", string(event.ComplianceType)).
		Msg("compliance event received")
}

func (l *Logger) LogDirective(ctx context.Context, event types.ComplianceEvent, directive types.Directive) {
	l.WithContext(ctx).Debug().
		Str("config_rule", event.ConfigRuleName).
		Str("directive", string(directive)).
		Msg("event classified")
}

func (l *Logger) LogOutcome(ctx context.Context, event types.ComplianceEvent, outcome types.Outcome) {
	l.WithContext(ctx).Info().
		Str("config_rule", event.ConfigRuleName).
		Str("resource_id", event.ResourceID).
		Str("outcome", string(outcome.Kind)).
		Str("directive", string(outcome.Directive)).
		Msg("workflow execution completed")
}

func (l *Logger) LogWorkflowFailure(ctx context.Context, event types.ComplianceEvent, err error) {
	l.WithContext(ctx).Error().
		Err(err).
		Str("config_rule", event.ConfigRuleName).
		Str("resource_id", event.ResourceID).
		Msg("workflow execution failed")
}

func (l *Logger) LogJournalWarning(ctx context.Context, err error) {
	l.WithContext(ctx).Warn().
		Err(err).
		Msg("journal write failed")
}
