package source

import (
	"encoding/json"
	"fmt"

	"github.com/fleetops/docdb-remediator/types"
)

// envelope is the bus-delivered wrapper around a compliance-change detail
type envelope struct {
	DetailType string `json:"detail-type"`
	Detail     detail `json:"detail"`
}

type detail struct {
	ConfigRuleName      string           `json:"configRuleName"`
	ResourceType        string           `json:"resourceType"`
	ResourceID          string           `json:"resourceId"`
	NewEvaluationResult evaluationResult `json:"newEvaluationResult"`
}

type evaluationResult struct {
	ComplianceType string `json:"complianceType"`
}

// resourceTypes maps the evaluator's resource type strings onto ours.
// DocumentDB resources surface under the RDS namespace.
var resourceTypes = map[string]types.ResourceType{
	"AWS::RDS::DBCluster":  types.ResourceTypeCluster,
	"AWS::RDS::DBInstance": types.ResourceTypeInstance,
}

// ParseEnvelope decodes one bus message body into a compliance event
func ParseEnvelope(body []byte) (types.ComplianceEvent, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return types.ComplianceEvent{}, fmt.Errorf("malformed event envelope: %w", err)
	}

	event := types.ComplianceEvent{
		ConfigRuleName: env.Detail.ConfigRuleName,
		ResourceType:   resourceTypes[env.Detail.ResourceType],
		ResourceID:     env.Detail.ResourceID,
		ComplianceType: types.ComplianceType(env.Detail.NewEvaluationResult.ComplianceType),
	}

	if err := event.Validate(); err != nil {
		return types.ComplianceEvent{}, fmt.Errorf("malformed event envelope: %w", err)
	}

	return event, nil
}
