package remedy

import (
	"context"

	"github.com/fleetops/docdb-remediator/resolver"
	"github.com/fleetops/docdb-remediator/types"
)

// ParameterGroup assigns the caller-supplied desired parameter group.
type ParameterGroup struct {
	clusterAction
	desired string
}

// NewParameterGroup creates the parameter-group action
func NewParameterGroup(res *resolver.Resolver, mutator Mutator, desired string) *ParameterGroup {
	return &ParameterGroup{
		clusterAction: clusterAction{resolver: res, mutator: mutator},
		desired:       desired,
	}
}

// Directive returns the routing key this action serves
func (a *ParameterGroup) Directive() types.Directive {
	return types.DirectiveParameterGroup
}

// Remediate resolves the identifier and assigns the desired parameter group.
// Fails fast before any control-plane call when no desired value is set.
func (a *ParameterGroup) Remediate(ctx context.Context, resourceID string) error {
	if a.desired == "" {
		return &ConfigMissingError{Option: "desired_parameter_group"}
	}
	return a.apply(ctx, resourceID, types.FieldParameterGroup, a.desired)
}

var _ Action = (*ParameterGroup)(nil)
