// Package resolver translates durable resource identifiers into the
// resource's current addressable name.
package resolver

import (
	"context"
	"fmt"

	"github.com/fleetops/docdb-remediator/types"
)

// Inventory is the read-only slice of the control plane the resolver needs
type Inventory interface {
	ListResources(ctx context.Context, resourceType types.ResourceType) ([]types.ManagedResource, error)
}

// Resolver looks up resources by durable identifier. Resolution is always
// attempted fresh: the mutable name may have changed since the compliance
// evaluation, so nothing is cached across executions.
type Resolver struct {
	inventory Inventory
}

// New creates a resolver over an inventory
func New(inventory Inventory) *Resolver {
	return &Resolver{inventory: inventory}
}

// Resolve returns the current name for a durable identifier. A single query
// attempt per invocation; no internal retry. A miss yields *NotFoundError so
// the workflow can route it to the fallback branch.
func (r *Resolver) Resolve(ctx context.Context, resourceType types.ResourceType, identifier string) (types.ResolvedResource, error) {
	resources, err := r.inventory.ListResources(ctx, resourceType)
	if err != nil {
		return types.ResolvedResource{}, fmt.Errorf("inventory query failed: %w", err)
	}

	for _, resource := range resources {
		if resource.Identifier == identifier {
			return types.ResolvedResource{
				Identifier:  identifier,
				CurrentName: resource.CurrentName,
			}, nil
		}
	}

	return types.ResolvedResource{}, &NotFoundError{Identifier: identifier}
}
