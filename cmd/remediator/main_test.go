package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/docdb-remediator/types"
)

func TestDecodeEvent_Envelope(t *testing.T) {
	body := []byte(`{
		"detail-type": "Config Rules Compliance Change",
		"detail": {
			"configRuleName": "documentdb-cluster-deletion-protection-enabled",
			"resourceType": "AWS::RDS::DBCluster",
			"resourceId": "cluster-ABC123",
			"newEvaluationResult": {"complianceType": "NON_COMPLIANT"}
		}
	}`)

	event, err := decodeEvent(body)
	require.NoError(t, err)
	assert.Equal(t, "documentdb-cluster-deletion-protection-enabled", event.ConfigRuleName)
	assert.Equal(t, types.ResourceTypeCluster, event.ResourceType)
	assert.Equal(t, "cluster-ABC123", event.ResourceID)
	assert.True(t, event.IsNonCompliant())
}

func TestDecodeEvent_BareEvent(t *testing.T) {
	body := []byte(`{
		"config_rule_name": "documentdb-cluster-parameter-group",
		"resource_type": "cluster",
		"resource_id": "cluster-DEF456",
		"compliance_type": "NON_COMPLIANT"
	}`)

	event, err := decodeEvent(body)
	require.NoError(t, err)
	assert.Equal(t, "documentdb-cluster-parameter-group", event.ConfigRuleName)
	assert.Equal(t, "cluster-DEF456", event.ResourceID)
}

func TestDecodeEvent_Malformed(t *testing.T) {
	_, err := decodeEvent([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeEvent_MissingRuleName(t *testing.T) {
	_, err := decodeEvent([]byte(`{"compliance_type": "NON_COMPLIANT"}`))
	assert.Error(t, err)
}
