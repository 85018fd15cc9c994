package types

import "fmt"

// ResourceType identifies which DocumentDB inventory an event refers to
type ResourceType string

const (
	ResourceTypeCluster  ResourceType = "cluster"
	ResourceTypeInstance ResourceType = "instance"
)

// ComplianceType is the evaluation verdict carried by an event
type ComplianceType string

const (
	ComplianceCompliant    ComplianceType = "COMPLIANT"
	ComplianceNonCompliant ComplianceType = "NON_COMPLIANT"
)

// ComplianceEvent is a compliance-change signal produced by the upstream
// evaluator. It is read-only inside the workflow; ResourceID is the durable
// identifier assigned at resource creation, not the current name.
type ComplianceEvent struct {
	ConfigRuleName string         `json:"config_rule_name"`
	ResourceType   ResourceType   `json:"resource_type"`
	ResourceID     string         `json:"resource_id"`
	ComplianceType ComplianceType `json:"compliance_type"`
}

// Validate ensures the event has required fields
func (e *ComplianceEvent) Validate() error {
	if e.ConfigRuleName == "" {
		return fmt.Errorf("event config rule name cannot be empty")
	}
	if e.ComplianceType == "" {
		return fmt.Errorf("event compliance type cannot be empty")
	}
	// ResourceID may be absent; resolution then finds no match, which is
	// handled by the fallback branch rather than validation.
	return nil
}

// IsNonCompliant reports whether the event should trigger remediation
func (e *ComplianceEvent) IsNonCompliant() bool {
	return e.ComplianceType == ComplianceNonCompliant
}
