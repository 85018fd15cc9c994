package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/docdb"

	"github.com/fleetops/docdb-remediator/providers"
	"github.com/fleetops/docdb-remediator/types"
)

// NewControlPlaneFactory creates DocumentDB control planes for the registry
func NewControlPlaneFactory(ctx context.Context, cfg providers.ProviderConfig) (providers.ControlPlane, error) {
	return NewControlPlane(ctx, cfg.Region, cfg.Profile)
}

func init() {
	providers.RegisterProvider("aws", NewControlPlaneFactory)
}

// ControlPlane implements providers.ControlPlane against Amazon DocumentDB
type ControlPlane struct {
	client DocDBAPI
	region string
}

// NewControlPlane creates a control plane with real AWS credentials
func NewControlPlane(ctx context.Context, region, profile string) (*ControlPlane, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &ControlPlane{
		client: docdb.NewFromConfig(cfg),
		region: region,
	}, nil
}

// NewControlPlaneWithClient creates a control plane with an injected client
func NewControlPlaneWithClient(client DocDBAPI, region string) *ControlPlane {
	return &ControlPlane{client: client, region: region}
}

// Name returns the provider name
func (p *ControlPlane) Name() string {
	return "aws"
}

// Region returns the AWS region
func (p *ControlPlane) Region() string {
	return p.region
}

// ListResources returns the inventory for one resource type. A single query
// attempt per invocation; the workflow owns any retry.
func (p *ControlPlane) ListResources(ctx context.Context, resourceType types.ResourceType) ([]types.ManagedResource, error) {
	switch resourceType {
	case types.ResourceTypeCluster:
		return p.listClusters(ctx)
	case types.ResourceTypeInstance:
		return p.listInstances(ctx)
	default:
		return nil, fmt.Errorf("unsupported resource type: %s", resourceType)
	}
}

// Ensure ControlPlane implements the capability interface
var _ providers.ControlPlane = (*ControlPlane)(nil)
