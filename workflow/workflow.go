// Package workflow ties classifier, remediation actions, fallback, and
// notification into one finite-state execution per compliance event.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetops/docdb-remediator/providers"
	"github.com/fleetops/docdb-remediator/remedy"
	"github.com/fleetops/docdb-remediator/resolver"
	"github.com/fleetops/docdb-remediator/telemetry"
	"github.com/fleetops/docdb-remediator/types"
	"github.com/fleetops/docdb-remediator/wal"
)

// Options configure the optional ambient pieces of the engine
type Options struct {
	Journal *wal.Journal
	Logger  *telemetry.Logger
	Metrics *telemetry.WorkflowMetrics
}

// Engine runs one workflow execution per compliance event. Executions are
// independent: no state is shared between them and nothing survives an
// execution, so a single engine may be driven concurrently.
type Engine struct {
	actions  map[types.Directive]remedy.Action
	notifier providers.Notifier
	journal  *wal.Journal
	logger   *telemetry.Logger
	metrics  *telemetry.WorkflowMetrics
}

// NewEngine creates a workflow engine over a notifier and remediation actions
func NewEngine(notifier providers.Notifier, actions []remedy.Action, opts Options) *Engine {
	byDirective := make(map[types.Directive]remedy.Action, len(actions))
	for _, action := range actions {
		byDirective[action.Directive()] = action
	}

	logger := opts.Logger
	if logger == nil {
		logger = telemetry.NewLogger("remediator")
	}

	return &Engine{
		actions:  byDirective,
		notifier: notifier,
		journal:  opts.Journal,
		logger:   logger,
		metrics:  opts.Metrics,
	}
}

// HandleComplianceEvent is the single entry point: one call per event,
// synchronous. On return the exit notification has been sent, or the
// execution has failed and no exit notification was attempted. ResourceNotFound
// is absorbed into the fallback outcome; ConfigurationMissing and transport
// errors surface as the returned error.
func (e *Engine) HandleComplianceEvent(ctx context.Context, event types.ComplianceEvent) (types.Outcome, error) {
	if err := event.Validate(); err != nil {
		return types.Outcome{}, fmt.Errorf("invalid compliance event: %w", err)
	}

	e.logger.LogEventReceived(ctx, event)
	e.journalStage(ctx, wal.StageReceived, event.ResourceID, event)

	var outcome types.Outcome
	state := StateNotifyEntry

	for {
		switch state {
		case StateNotifyEntry:
			if err := e.notify(ctx, types.EntryNotification(event)); err != nil {
				return types.Outcome{}, e.fail(ctx, event, fmt.Errorf("entry notification failed: %w", err))
			}
			e.journalStage(ctx, wal.StageNotified, event.ResourceID, nil)
			state = next(state, StepOK)

		case StateClassify:
			directive := Classify(event.ConfigRuleName)
			e.logger.LogDirective(ctx, event, directive)
			e.journalStage(ctx, wal.StageClassified, event.ResourceID, directive)
			state = classifyTargets[directive]

		case StateDeletionProtection, StateParameterGroup, StateBackupRetention:
			directive := stateDirectives[state]
			result, err := e.remediate(ctx, directive, event.ResourceID)
			if err != nil {
				return types.Outcome{}, e.fail(ctx, event, err)
			}
			if result == StepNotFound {
				outcome = types.NotFoundOutcome(directive, event.ResourceID)
				e.journalStage(ctx, wal.StageFallback, event.ResourceID, outcome)
			} else {
				outcome = types.ExecutedOutcome(directive)
				e.journalStage(ctx, wal.StageRemediated, event.ResourceID, outcome)
			}
			state = next(state, result)

		case StateUnknownDirective:
			outcome = types.UnknownOutcome()
			state = next(state, StepOK)

		case StateExecuted, StateNotFoundFallback:
			// Pass-through states; the outcome was produced on entry.
			state = next(state, StepOK)

		case StateNotifyExit:
			if err := e.notify(ctx, types.ExitNotification(event, outcome)); err != nil {
				return types.Outcome{}, e.fail(ctx, event, fmt.Errorf("exit notification failed: %w", err))
			}
			e.journalStage(ctx, wal.StageCompleted, event.ResourceID, outcome)
			e.logger.LogOutcome(ctx, event, outcome)
			if e.metrics != nil {
				e.metrics.RecordOutcome(ctx, outcome)
			}
			return outcome, nil

		default:
			return types.Outcome{}, e.fail(ctx, event, fmt.Errorf("no transition from state %s", state))
		}
	}
}

// remediate runs one action and folds its error into a step result.
// Only a resolver miss transitions to the fallback branch; every other
// failure terminates the execution.
func (e *Engine) remediate(ctx context.Context, directive types.Directive, resourceID string) (StepResult, error) {
	action, ok := e.actions[directive]
	if !ok {
		return "", fmt.Errorf("no action registered for directive %s", directive)
	}

	err := action.Remediate(ctx, resourceID)
	if err == nil {
		return StepOK, nil
	}

	var notFound *resolver.NotFoundError
	if errors.As(err, &notFound) {
		return StepNotFound, nil
	}

	return "", fmt.Errorf("remediation %s failed: %w", directive, err)
}

func (e *Engine) notify(ctx context.Context, notification types.Notification) error {
	if err := e.notifier.Send(ctx, notification); err != nil {
		return err
	}
	if e.metrics != nil {
		e.metrics.RecordNotification(ctx)
	}
	return nil
}

// journalStage records an audit entry. Journal failures never fail the
// execution they describe.
func (e *Engine) journalStage(ctx context.Context, stage wal.Stage, resourceID string, data interface{}) {
	if e.journal == nil {
		return
	}
	if err := e.journal.Append(stage, resourceID, data); err != nil {
		e.logger.LogJournalWarning(ctx, err)
	}
}

func (e *Engine) fail(ctx context.Context, event types.ComplianceEvent, err error) error {
	e.logger.LogWorkflowFailure(ctx, event, err)
	if e.journal != nil {
		if jerr := e.journal.AppendError(wal.StageFailed, event.ResourceID, nil, err); jerr != nil {
			e.logger.LogJournalWarning(ctx, jerr)
		}
	}
	if e.metrics != nil {
		e.metrics.RecordFailure(ctx, event.ConfigRuleName)
	}
	return err
}
