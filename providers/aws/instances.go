package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/docdb"
	docdbtypes "github.com/aws/aws-sdk-go-v2/service/docdb/types"

	"github.com/fleetops/docdb-remediator/types"
)

// listInstances scans all DocumentDB instances
func (p *ControlPlane) listInstances(ctx context.Context) ([]types.ManagedResource, error) {
	paginator := docdb.NewDescribeDBInstancesPaginator(p.client, &docdb.DescribeDBInstancesInput{})

	var resources []types.ManagedResource
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe DB instances: %w", err)
		}

		for _, instance := range output.DBInstances {
			resources = append(resources, buildInstanceResource(instance))
		}
	}

	return resources, nil
}

// buildInstanceResource converts a DocumentDB instance to a ManagedResource.
// DbiResourceId is the durable identifier for instances.
func buildInstanceResource(instance docdbtypes.DBInstance) types.ManagedResource {
	return types.ManagedResource{
		Identifier:            aws.ToString(instance.DbiResourceId),
		CurrentName:           aws.ToString(instance.DBInstanceIdentifier),
		Type:                  types.ResourceTypeInstance,
		Status:                aws.ToString(instance.DBInstanceStatus),
		Engine:                aws.ToString(instance.Engine),
		BackupRetentionPeriod: aws.ToInt32(instance.BackupRetentionPeriod),
	}
}
