package types

import "fmt"

// Notification is a subject/body pair published on the notification channel.
// The workflow sends one on entry and one on exit; delivery durability is the
// channel's responsibility, no acknowledgment is tracked here.
type Notification struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EntryNotification announces a non-compliant event before remediation starts
func EntryNotification(event ComplianceEvent) Notification {
	return Notification{
		Subject: fmt.Sprintf("non-compliant: %s", event.ConfigRuleName),
		Body: fmt.Sprintf("resource %s (%s) is non-compliant with rule %s",
			event.ResourceID, event.ResourceType, event.ConfigRuleName),
	}
}

// ExitNotification announces the terminal outcome of a workflow execution
func ExitNotification(event ComplianceEvent, outcome Outcome) Notification {
	return Notification{
		Subject: fmt.Sprintf("remediation result: %s", event.ConfigRuleName),
		Body:    outcome.Message(),
	}
}
