package workflow

import "github.com/fleetops/docdb-remediator/types"

// State names one node of the remediation state machine
type State string

const (
	StateNotifyEntry        State = "notify_entry"
	StateClassify           State = "classify"
	StateDeletionProtection State = "deletion_protection"
	StateParameterGroup     State = "parameter_group"
	StateBackupRetention    State = "backup_retention"
	StateUnknownDirective   State = "unknown_directive"
	StateExecuted           State = "executed"
	StateNotFoundFallback   State = "not_found_fallback"
	StateNotifyExit         State = "notify_exit"
)

// StepResult tags the outcome of executing one state
type StepResult string

const (
	StepOK       StepResult = "ok"
	StepNotFound StepResult = "not_found"
)

// transitions is the state machine as data: state -> step result -> next
// state. Any other failure inside a state is not a transition; it terminates
// the execution and surfaces to the caller.
var transitions = map[State]map[StepResult]State{
	StateNotifyEntry:        {StepOK: StateClassify},
	StateDeletionProtection: {StepOK: StateExecuted, StepNotFound: StateNotFoundFallback},
	StateParameterGroup:     {StepOK: StateExecuted, StepNotFound: StateNotFoundFallback},
	StateBackupRetention:    {StepOK: StateExecuted, StepNotFound: StateNotFoundFallback},
	StateUnknownDirective:   {StepOK: StateNotifyExit},
	StateExecuted:           {StepOK: StateNotifyExit},
	StateNotFoundFallback:   {StepOK: StateNotifyExit},
}

// classifyTargets routes each directive to its remediation state
var classifyTargets = map[types.Directive]State{
	types.DirectiveDeletionProtection: StateDeletionProtection,
	types.DirectiveParameterGroup:     StateParameterGroup,
	types.DirectiveBackupRetention:    StateBackupRetention,
	types.DirectiveUnknown:            StateUnknownDirective,
}

// stateDirectives is the inverse mapping for the remediation states
var stateDirectives = map[State]types.Directive{
	StateDeletionProtection: types.DirectiveDeletionProtection,
	StateParameterGroup:     types.DirectiveParameterGroup,
	StateBackupRetention:    types.DirectiveBackupRetention,
}

// next returns the successor state for a step result
func next(state State, result StepResult) State {
	return transitions[state][result]
}
