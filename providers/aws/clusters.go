package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/docdb"
	docdbtypes "github.com/aws/aws-sdk-go-v2/service/docdb/types"

	"github.com/fleetops/docdb-remediator/types"
)

// listClusters scans all DocumentDB clusters
func (p *ControlPlane) listClusters(ctx context.Context) ([]types.ManagedResource, error) {
	paginator := docdb.NewDescribeDBClustersPaginator(p.client, &docdb.DescribeDBClustersInput{})

	var resources []types.ManagedResource
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe DB clusters: %w", err)
		}

		for _, cluster := range output.DBClusters {
			resources = append(resources, buildClusterResource(cluster))
		}
	}

	return resources, nil
}

// buildClusterResource converts a DocumentDB cluster to a ManagedResource.
// DbClusterResourceId is the durable identifier; DBClusterIdentifier is the
// current mutable name used for modification calls.
func buildClusterResource(cluster docdbtypes.DBCluster) types.ManagedResource {
	return types.ManagedResource{
		Identifier:            aws.ToString(cluster.DbClusterResourceId),
		CurrentName:           aws.ToString(cluster.DBClusterIdentifier),
		Type:                  types.ResourceTypeCluster,
		Status:                aws.ToString(cluster.Status),
		Engine:                aws.ToString(cluster.Engine),
		DeletionProtection:    aws.ToBool(cluster.DeletionProtection),
		ParameterGroup:        aws.ToString(cluster.DBClusterParameterGroup),
		BackupRetentionPeriod: aws.ToInt32(cluster.BackupRetentionPeriod),
	}
}
