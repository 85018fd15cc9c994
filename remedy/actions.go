// Package remedy implements the remediation actions that bring DocumentDB
// resources back into compliance.
package remedy

import (
	"context"

	"github.com/fleetops/docdb-remediator/resolver"
	"github.com/fleetops/docdb-remediator/types"
)

// Mutator is the write half of the control plane an action needs
type Mutator interface {
	ApplyConfiguration(ctx context.Context, change types.ConfigChange) error
}

// Action applies one idempotent configuration change to the resource carrying
// a durable identifier. Implementations resolve the identifier fresh, then
// issue a single mutation; a resolver miss propagates unchanged so the
// workflow can take the fallback branch.
type Action interface {
	Directive() types.Directive
	Remediate(ctx context.Context, resourceID string) error
}

// clusterAction is the shared resolve-then-mutate shape of all three actions.
// The governed settings are cluster scoped, so resolution always runs against
// the cluster inventory.
type clusterAction struct {
	resolver *resolver.Resolver
	mutator  Mutator
}

func (a *clusterAction) apply(ctx context.Context, resourceID string, field types.ConfigField, value string) error {
	resolved, err := a.resolver.Resolve(ctx, types.ResourceTypeCluster, resourceID)
	if err != nil {
		// NotFound must reach the workflow unwrapped.
		return err
	}

	return a.mutator.ApplyConfiguration(ctx, types.ConfigChange{
		ResourceType: types.ResourceTypeCluster,
		CurrentName:  resolved.CurrentName,
		Field:        field,
		Value:        value,
	})
}
