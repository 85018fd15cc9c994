package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/docdb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// DocDBAPI defines the DocumentDB operations used by the control plane.
type DocDBAPI interface {
	DescribeDBClusters(ctx context.Context, params *docdb.DescribeDBClustersInput, optFns ...func(*docdb.Options)) (*docdb.DescribeDBClustersOutput, error)
	DescribeDBInstances(ctx context.Context, params *docdb.DescribeDBInstancesInput, optFns ...func(*docdb.Options)) (*docdb.DescribeDBInstancesOutput, error)
	ModifyDBCluster(ctx context.Context, params *docdb.ModifyDBClusterInput, optFns ...func(*docdb.Options)) (*docdb.ModifyDBClusterOutput, error)
}

// SNSAPI defines the SNS operations used by the notifier.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}
