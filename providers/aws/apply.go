package aws

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/docdb"

	"github.com/fleetops/docdb-remediator/types"
)

// ApplyConfiguration issues one single-field mutation. The three supported
// fields are cluster scoped in DocumentDB; instances inherit them from their
// cluster, so instance-level changes are rejected rather than silently noop'd.
func (p *ControlPlane) ApplyConfiguration(ctx context.Context, change types.ConfigChange) error {
	if err := change.Validate(); err != nil {
		return fmt.Errorf("invalid configuration change: %w", err)
	}

	if change.ResourceType != types.ResourceTypeCluster {
		return fmt.Errorf("field %s is cluster scoped, cannot apply to %s", change.Field, change.ResourceType)
	}

	input, err := buildModifyClusterInput(change)
	if err != nil {
		return err
	}

	if _, err := p.client.ModifyDBCluster(ctx, input); err != nil {
		return fmt.Errorf("failed to modify cluster %s: %w", change.CurrentName, err)
	}

	return nil
}

// buildModifyClusterInput maps a ConfigChange to a ModifyDBCluster call.
// ApplyImmediately avoids the change parking until the maintenance window;
// applying an already-current value is a no-op at the control plane.
func buildModifyClusterInput(change types.ConfigChange) (*docdb.ModifyDBClusterInput, error) {
	input := &docdb.ModifyDBClusterInput{
		DBClusterIdentifier: aws.String(change.CurrentName),
		ApplyImmediately:    aws.Bool(true),
	}

	switch change.Field {
	case types.FieldDeletionProtection:
		enabled, err := strconv.ParseBool(change.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid deletion protection value %q: %w", change.Value, err)
		}
		input.DeletionProtection = aws.Bool(enabled)

	case types.FieldParameterGroup:
		input.DBClusterParameterGroupName = aws.String(change.Value)

	case types.FieldBackupRetentionPeriod:
		days, err := strconv.Atoi(change.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid backup retention value %q: %w", change.Value, err)
		}
		input.BackupRetentionPeriod = aws.Int32(int32(days))

	default:
		return nil, fmt.Errorf("unsupported configuration field: %s", change.Field)
	}

	return input, nil
}
