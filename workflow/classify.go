package workflow

import "github.com/fleetops/docdb-remediator/types"

// Known config rule names. Rule names are mutually exclusive by construction,
// so dispatch order carries no priority.
const (
	RuleDeletionProtection = "documentdb-cluster-deletion-protection-enabled"
	RuleParameterGroup     = "documentdb-cluster-parameter-group"
	RuleBackupRetention    = "documentdb-cluster-backup-retention-check"
)

// Classify maps a config rule name to its remediation directive. A pure
// string-equality dispatch; an unrecognized name is a recognized terminal
// outcome, not an error.
func Classify(configRuleName string) types.Directive {
	switch configRuleName {
	case RuleDeletionProtection:
		return types.DirectiveDeletionProtection
	case RuleParameterGroup:
		return types.DirectiveParameterGroup
	case RuleBackupRetention:
		return types.DirectiveBackupRetention
	default:
		return types.DirectiveUnknown
	}
}
