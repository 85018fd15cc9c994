package types

import "fmt"

// Directive is the routing key extracted from an event's config rule name.
// Rule names are unique strings, so exactly one directive matches per event.
type Directive string

const (
	DirectiveDeletionProtection Directive = "deletion_protection"
	DirectiveParameterGroup     Directive = "parameter_group"
	DirectiveBackupRetention    Directive = "backup_retention"
	DirectiveUnknown            Directive = "unknown"
)

// OutcomeKind tags the terminal result of a workflow execution
type OutcomeKind string

const (
	OutcomeExecuted         OutcomeKind = "executed"
	OutcomeResourceNotFound OutcomeKind = "resource_not_found"
	OutcomeUnknownDirective OutcomeKind = "unknown_directive"
)

// Outcome is the tagged result of one workflow execution. Exactly one outcome
// is produced per event; it feeds the exit notification.
type Outcome struct {
	Kind       OutcomeKind `json:"kind"`
	Directive  Directive   `json:"directive,omitempty"`
	ResourceID string      `json:"resource_id,omitempty"`
}

// ExecutedOutcome records a successfully applied remediation
func ExecutedOutcome(directive Directive) Outcome {
	return Outcome{Kind: OutcomeExecuted, Directive: directive}
}

// NotFoundOutcome records a resource that vanished between evaluation and
// remediation. The directive that was being applied is kept for the message.
func NotFoundOutcome(directive Directive, resourceID string) Outcome {
	return Outcome{Kind: OutcomeResourceNotFound, Directive: directive, ResourceID: resourceID}
}

// UnknownOutcome records an event whose rule name maps to no remediation
func UnknownOutcome() Outcome {
	return Outcome{Kind: OutcomeUnknownDirective, Directive: DirectiveUnknown}
}

// Message renders the outcome for the exit notification body
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeExecuted:
		return fmt.Sprintf("remediation executed: %s", o.Directive)
	case OutcomeResourceNotFound:
		return fmt.Sprintf("resource not found: %s (while applying %s)", o.ResourceID, o.Directive)
	case OutcomeUnknownDirective:
		return "remediation type not found"
	default:
		return string(o.Kind)
	}
}
