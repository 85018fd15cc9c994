package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/docdb-remediator/remedy"
	"github.com/fleetops/docdb-remediator/resolver"
	"github.com/fleetops/docdb-remediator/types"
	"github.com/fleetops/docdb-remediator/wal"
)

// mockControlPlane implements the resolver inventory and the action mutator
type mockControlPlane struct {
	resources []types.ManagedResource
	changes   []types.ConfigChange
	listCalls int
	applyErr  error
}

func (m *mockControlPlane) ListResources(ctx context.Context, resourceType types.ResourceType) ([]types.ManagedResource, error) {
	m.listCalls++
	var result []types.ManagedResource
	for _, r := range m.resources {
		if r.Type == resourceType {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockControlPlane) ApplyConfiguration(ctx context.Context, change types.ConfigChange) error {
	if m.applyErr != nil {
		return m.applyErr
	}
	m.changes = append(m.changes, change)
	return nil
}

// mockNotifier records notifications and can fail selectively
type mockNotifier struct {
	sent      []types.Notification
	failAfter int // fail the Nth send (1-based, 0 = never)
}

func (m *mockNotifier) Send(ctx context.Context, notification types.Notification) error {
	if m.failAfter > 0 && len(m.sent)+1 == m.failAfter {
		return errors.New("publish failed")
	}
	m.sent = append(m.sent, notification)
	return nil
}

func newTestEngine(plane *mockControlPlane, notifier *mockNotifier, paramGroup string, retentionDays int) *Engine {
	res := resolver.New(plane)
	actions := []remedy.Action{
		remedy.NewDeletionProtection(res, plane),
		remedy.NewParameterGroup(res, plane, paramGroup),
		remedy.NewBackupRetention(res, plane, retentionDays),
	}
	return NewEngine(notifier, actions, Options{})
}

func nonCompliantEvent(rule, resourceID string) types.ComplianceEvent {
	return types.ComplianceEvent{
		ConfigRuleName: rule,
		ResourceType:   types.ResourceTypeCluster,
		ResourceID:     resourceID,
		ComplianceType: types.ComplianceNonCompliant,
	}
}

func TestHandleComplianceEventExecuted(t *testing.T) {
	plane := &mockControlPlane{
		resources: []types.ManagedResource{
			{Identifier: "cluster-123", CurrentName: "orders-prod", Type: types.ResourceTypeCluster},
		},
	}
	notifier := &mockNotifier{}
	engine := newTestEngine(plane, notifier, "hardened.docdb5.0", 14)

	outcome, err := engine.HandleComplianceEvent(context.Background(),
		nonCompliantEvent(RuleDeletionProtection, "cluster-123"))
	require.NoError(t, err)

	assert.Equal(t, types.OutcomeExecuted, outcome.Kind)
	assert.Equal(t, types.DirectiveDeletionProtection, outcome.Directive)

	// Exactly one mutation, against the resolved current name.
	require.Len(t, plane.changes, 1)
	assert.Equal(t, "orders-prod", plane.changes[0].CurrentName)
	assert.Equal(t, types.FieldDeletionProtection, plane.changes[0].Field)

	// Entry then exit notification, exit reflecting the branch taken.
	require.Len(t, notifier.sent, 2)
	assert.Contains(t, notifier.sent[0].Subject, "non-compliant")
	assert.Contains(t, notifier.sent[1].Body, "remediation executed")
}

func TestHandleComplianceEventResourceNotFound(t *testing.T) {
	plane := &mockControlPlane{} // empty inventory
	notifier := &mockNotifier{}
	engine := newTestEngine(plane, notifier, "hardened.docdb5.0", 14)

	outcome, err := engine.HandleComplianceEvent(context.Background(),
		nonCompliantEvent(RuleParameterGroup, "cluster-999"))
	require.NoError(t, err)

	assert.Equal(t, types.OutcomeResourceNotFound, outcome.Kind)
	assert.Equal(t, "cluster-999", outcome.ResourceID)
	assert.Equal(t, types.DirectiveParameterGroup, outcome.Directive)

	// Zero mutation calls; the fallback branch still notifies.
	assert.Empty(t, plane.changes)
	require.Len(t, notifier.sent, 2)
	assert.Contains(t, notifier.sent[1].Body, "resource not found")
}

func TestHandleComplianceEventUnknownDirective(t *testing.T) {
	plane := &mockControlPlane{}
	notifier := &mockNotifier{}
	engine := newTestEngine(plane, notifier, "hardened.docdb5.0", 14)

	outcome, err := engine.HandleComplianceEvent(context.Background(),
		nonCompliantEvent("documentdb-something-else", "cluster-1"))
	require.NoError(t, err)

	assert.Equal(t, types.OutcomeUnknownDirective, outcome.Kind)

	// Unknown rules are terminal non-errors: no resolver, no mutation.
	assert.Zero(t, plane.listCalls)
	assert.Empty(t, plane.changes)
	require.Len(t, notifier.sent, 2)
	assert.Contains(t, notifier.sent[1].Body, "remediation type not found")
}

func TestHandleComplianceEventConfigMissing(t *testing.T) {
	plane := &mockControlPlane{
		resources: []types.ManagedResource{
			{Identifier: "cluster-123", CurrentName: "orders-prod", Type: types.ResourceTypeCluster},
		},
	}
	notifier := &mockNotifier{}
	engine := newTestEngine(plane, notifier, "hardened.docdb5.0", 0) // retention unset

	_, err := engine.HandleComplianceEvent(context.Background(),
		nonCompliantEvent(RuleBackupRetention, "cluster-123"))
	require.Error(t, err)

	var missing *remedy.ConfigMissingError
	assert.True(t, errors.As(err, &missing))

	// Fatal before any mutation; only the entry notification went out.
	assert.Empty(t, plane.changes)
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].Subject, "non-compliant")
}

func TestHandleComplianceEventTransportFailure(t *testing.T) {
	plane := &mockControlPlane{
		resources: []types.ManagedResource{
			{Identifier: "cluster-123", CurrentName: "orders-prod", Type: types.ResourceTypeCluster},
		},
		applyErr: errors.New("control plane unavailable"),
	}
	notifier := &mockNotifier{}
	engine := newTestEngine(plane, notifier, "hardened.docdb5.0", 14)

	_, err := engine.HandleComplianceEvent(context.Background(),
		nonCompliantEvent(RuleDeletionProtection, "cluster-123"))
	require.Error(t, err)

	// Not folded into the fallback branch.
	var notFound *resolver.NotFoundError
	assert.False(t, errors.As(err, &notFound))
	require.Len(t, notifier.sent, 1)
}

func TestHandleComplianceEventEntryNotificationFailure(t *testing.T) {
	plane := &mockControlPlane{}
	notifier := &mockNotifier{failAfter: 1}
	engine := newTestEngine(plane, notifier, "hardened.docdb5.0", 14)

	_, err := engine.HandleComplianceEvent(context.Background(),
		nonCompliantEvent(RuleDeletionProtection, "cluster-123"))
	require.Error(t, err)
	assert.Empty(t, notifier.sent)
	assert.Zero(t, plane.listCalls)
}

func TestHandleComplianceEventInvalidEvent(t *testing.T) {
	engine := newTestEngine(&mockControlPlane{}, &mockNotifier{}, "", 0)

	_, err := engine.HandleComplianceEvent(context.Background(), types.ComplianceEvent{})
	require.Error(t, err)
}

func TestHandleComplianceEventDuplicateDelivery(t *testing.T) {
	plane := &mockControlPlane{
		resources: []types.ManagedResource{
			{Identifier: "cluster-123", CurrentName: "orders-prod", Type: types.ResourceTypeCluster},
		},
	}
	notifier := &mockNotifier{}
	engine := newTestEngine(plane, notifier, "hardened.docdb5.0", 14)
	event := nonCompliantEvent(RuleBackupRetention, "cluster-123")

	first, err := engine.HandleComplianceEvent(context.Background(), event)
	require.NoError(t, err)
	second, err := engine.HandleComplianceEvent(context.Background(), event)
	require.NoError(t, err)

	// Both deliveries run independently; mutations converge on one value.
	assert.Equal(t, first, second)
	require.Len(t, plane.changes, 2)
	assert.Equal(t, plane.changes[0], plane.changes[1])
}

func TestHandleComplianceEventJournalsCompletion(t *testing.T) {
	dir := t.TempDir()
	journal, err := wal.Open(dir)
	require.NoError(t, err)
	defer func() { _ = journal.Close() }()

	plane := &mockControlPlane{
		resources: []types.ManagedResource{
			{Identifier: "cluster-123", CurrentName: "orders-prod", Type: types.ResourceTypeCluster},
		},
	}
	res := resolver.New(plane)
	engine := NewEngine(&mockNotifier{}, []remedy.Action{
		remedy.NewDeletionProtection(res, plane),
	}, Options{Journal: journal})

	_, err = engine.HandleComplianceEvent(context.Background(),
		nonCompliantEvent(RuleDeletionProtection, "cluster-123"))
	require.NoError(t, err)
	require.NoError(t, journal.Close())

	entries, err := wal.ReadAll(dir)
	require.NoError(t, err)

	completed := 0
	for _, entry := range entries {
		if entry.Stage == wal.StageCompleted {
			completed++
		}
	}
	assert.Equal(t, 1, completed)
}
