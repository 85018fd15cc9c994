package providers

import (
	"context"
	"fmt"

	"github.com/fleetops/docdb-remediator/types"
)

// ControlPlane is the narrow capability interface the workflow consumes to
// inspect and mutate managed database resources. Implementations make a
// single bounded attempt per call; retry belongs to the invoking layer.
type ControlPlane interface {
	// ListResources returns the current inventory for one resource type.
	ListResources(ctx context.Context, resourceType types.ResourceType) ([]types.ManagedResource, error)

	// ApplyConfiguration issues one idempotent single-field mutation.
	ApplyConfiguration(ctx context.Context, change types.ConfigChange) error

	// Provider info
	Name() string
	Region() string
}

// Notifier publishes workflow notifications. Fire-and-forget from the
// workflow's perspective; no delivery confirmation is consumed.
type Notifier interface {
	Send(ctx context.Context, notification types.Notification) error
}

// ProviderConfig holds provider configuration
type ProviderConfig struct {
	Region  string
	Profile string
}

// ProviderFactory creates a control-plane instance
type ProviderFactory func(ctx context.Context, config ProviderConfig) (ControlPlane, error)

// Registry of available providers
var providers = make(map[string]ProviderFactory)

// RegisterProvider registers a new provider factory
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// GetProvider creates a control-plane instance by name
func GetProvider(ctx context.Context, name string, config ProviderConfig) (ControlPlane, error) {
	factory, exists := providers[name]
	if !exists {
		return nil, fmt.Errorf("provider %s not found", name)
	}
	return factory(ctx, config)
}

// ListProviders returns available provider names
func ListProviders() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	return names
}
