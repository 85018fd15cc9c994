package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeMessage(t *testing.T) {
	t.Run("executed", func(t *testing.T) {
		outcome := ExecutedOutcome(DirectiveBackupRetention)
		assert.Equal(t, OutcomeExecuted, outcome.Kind)
		assert.Equal(t, "remediation executed: backup_retention", outcome.Message())
	})

	t.Run("resource not found keeps directive and id", func(t *testing.T) {
		outcome := NotFoundOutcome(DirectiveParameterGroup, "cluster-999")
		assert.Equal(t, OutcomeResourceNotFound, outcome.Kind)
		assert.Equal(t, "cluster-999", outcome.ResourceID)
		assert.Equal(t, "resource not found: cluster-999 (while applying parameter_group)", outcome.Message())
	})

	t.Run("unknown directive", func(t *testing.T) {
		outcome := UnknownOutcome()
		assert.Equal(t, OutcomeUnknownDirective, outcome.Kind)
		assert.Equal(t, "remediation type not found", outcome.Message())
	})
}

func TestNotifications(t *testing.T) {
	event := ComplianceEvent{
		ConfigRuleName: "documentdb-cluster-deletion-protection-enabled",
		ResourceType:   ResourceTypeCluster,
		ResourceID:     "cluster-ABC123",
		ComplianceType: ComplianceNonCompliant,
	}

	entry := EntryNotification(event)
	assert.Contains(t, entry.Subject, "non-compliant")
	assert.Contains(t, entry.Body, "cluster-ABC123")
	assert.Contains(t, entry.Body, event.ConfigRuleName)

	exit := ExitNotification(event, ExecutedOutcome(DirectiveDeletionProtection))
	assert.Contains(t, exit.Subject, "remediation result")
	assert.Contains(t, exit.Body, "remediation executed")
}
