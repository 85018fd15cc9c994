package remedy

import (
	"context"

	"github.com/fleetops/docdb-remediator/resolver"
	"github.com/fleetops/docdb-remediator/types"
)

// DeletionProtection enables the cluster's deletion-protection flag.
// No external configuration required.
type DeletionProtection struct {
	clusterAction
}

// NewDeletionProtection creates the deletion-protection action
func NewDeletionProtection(res *resolver.Resolver, mutator Mutator) *DeletionProtection {
	return &DeletionProtection{clusterAction{resolver: res, mutator: mutator}}
}

// Directive returns the routing key this action serves
func (a *DeletionProtection) Directive() types.Directive {
	return types.DirectiveDeletionProtection
}

// Remediate resolves the identifier and enables deletion protection
func (a *DeletionProtection) Remediate(ctx context.Context, resourceID string) error {
	return a.apply(ctx, resourceID, types.FieldDeletionProtection, "true")
}

var _ Action = (*DeletionProtection)(nil)
