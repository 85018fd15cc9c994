package types

import "fmt"

// ConfigField names a single mutable configuration field on a resource
type ConfigField string

const (
	FieldDeletionProtection    ConfigField = "deletion_protection"
	FieldParameterGroup        ConfigField = "parameter_group"
	FieldBackupRetentionPeriod ConfigField = "backup_retention_period"
)

// ConfigChange is a single-field idempotent mutation request against the
// control plane. Applying the same desired value repeatedly is a no-op at the
// target, so changes carry no versioning or locking.
type ConfigChange struct {
	ResourceType ResourceType `json:"resource_type"`
	CurrentName  string       `json:"current_name"`
	Field        ConfigField  `json:"field"`
	Value        string       `json:"value"`
}

// Validate ensures the change has required fields
func (c *ConfigChange) Validate() error {
	if c.CurrentName == "" {
		return fmt.Errorf("change resource name cannot be empty")
	}
	if c.Field == "" {
		return fmt.Errorf("change field cannot be empty")
	}
	if c.Value == "" {
		return fmt.Errorf("change value cannot be empty")
	}
	return nil
}
