package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/docdb-remediator/types"
)

func TestTransitionTableReachesExit(t *testing.T) {
	// Every state reachable from NotifyEntry must drain into NotifyExit.
	for _, start := range []State{StateNotifyEntry, StateDeletionProtection, StateParameterGroup, StateBackupRetention, StateUnknownDirective} {
		state := start
		for steps := 0; state != StateNotifyExit; steps++ {
			require.Less(t, steps, 10, "state %s does not reach exit from %s", state, start)
			if state == StateClassify {
				state = classifyTargets[types.DirectiveUnknown]
				continue
			}
			nextState := next(state, StepOK)
			require.NotEmpty(t, nextState, "state %s has no ok transition", state)
			state = nextState
		}
	}
}

func TestRemediationStatesHaveFallbackEdge(t *testing.T) {
	for _, state := range []State{StateDeletionProtection, StateParameterGroup, StateBackupRetention} {
		assert.Equal(t, StateNotFoundFallback, next(state, StepNotFound), "state %s", state)
		assert.Equal(t, StateExecuted, next(state, StepOK), "state %s", state)
	}
}

func TestClassifyTargetsCoverAllDirectives(t *testing.T) {
	for _, directive := range []types.Directive{
		types.DirectiveDeletionProtection,
		types.DirectiveParameterGroup,
		types.DirectiveBackupRetention,
		types.DirectiveUnknown,
	} {
		target, ok := classifyTargets[directive]
		require.True(t, ok, "directive %s has no target state", directive)
		assert.NotEmpty(t, target)
	}
}

func TestStateDirectivesMatchClassifyTargets(t *testing.T) {
	for directive, state := range classifyTargets {
		if directive == types.DirectiveUnknown {
			continue
		}
		assert.Equal(t, directive, stateDirectives[state])
	}
}
