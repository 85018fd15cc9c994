package types

// ManagedResource is one row of the control-plane inventory. Identifier is
// the durable resource id; CurrentName is the mutable identifier used for
// modification calls and may change between evaluation and remediation.
type ManagedResource struct {
	Identifier            string       `json:"identifier"`
	CurrentName           string       `json:"current_name"`
	Type                  ResourceType `json:"type"`
	Status                string       `json:"status,omitempty"`
	Engine                string       `json:"engine,omitempty"`
	DeletionProtection    bool         `json:"deletion_protection,omitempty"`
	ParameterGroup        string       `json:"parameter_group,omitempty"`
	BackupRetentionPeriod int32        `json:"backup_retention_period,omitempty"`
}

// ResolvedResource is the transient result of resolving a durable identifier
// to the resource's current name. Never cached across executions.
type ResolvedResource struct {
	Identifier  string `json:"identifier"`
	CurrentName string `json:"current_name"`
}
