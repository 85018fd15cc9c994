package remedy

import (
	"context"
	"strconv"

	"github.com/fleetops/docdb-remediator/resolver"
	"github.com/fleetops/docdb-remediator/types"
)

// BackupRetention sets the caller-supplied desired backup-retention period.
type BackupRetention struct {
	clusterAction
	desiredDays int
}

// NewBackupRetention creates the backup-retention action
func NewBackupRetention(res *resolver.Resolver, mutator Mutator, desiredDays int) *BackupRetention {
	return &BackupRetention{
		clusterAction: clusterAction{resolver: res, mutator: mutator},
		desiredDays:   desiredDays,
	}
}

// Directive returns the routing key this action serves
func (a *BackupRetention) Directive() types.Directive {
	return types.DirectiveBackupRetention
}

// Remediate resolves the identifier and sets the desired retention period.
// Fails fast before any control-plane call when no desired value is set.
func (a *BackupRetention) Remediate(ctx context.Context, resourceID string) error {
	if a.desiredDays <= 0 {
		return &ConfigMissingError{Option: "desired_backup_retention_days"}
	}
	return a.apply(ctx, resourceID, types.FieldBackupRetentionPeriod, strconv.Itoa(a.desiredDays))
}

var _ Action = (*BackupRetention)(nil)
