package wal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	journal, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, journal.Append(StageReceived, "cluster-ABC123", map[string]string{"rule": "documentdb-cluster-parameter-group"}))
	require.NoError(t, journal.Append(StageClassified, "cluster-ABC123", "parameter_group"))
	require.NoError(t, journal.Append(StageCompleted, "cluster-ABC123", nil))
	require.NoError(t, journal.Close())

	entries, err := ReadAll(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, StageReceived, entries[0].Stage)
	assert.Equal(t, int64(1), entries[0].Sequence)
	assert.Equal(t, StageCompleted, entries[2].Stage)
	assert.Equal(t, int64(3), entries[2].Sequence)
	assert.Equal(t, "cluster-ABC123", entries[2].ResourceID)
}

func TestJournalAppendError(t *testing.T) {
	dir := t.TempDir()

	journal, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, journal.AppendError(StageFailed, "cluster-ABC123", nil, assertError("control plane unavailable")))
	require.NoError(t, journal.Close())

	entries, err := ReadAll(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, StageFailed, entries[0].Stage)
	assert.Equal(t, "control plane unavailable", entries[0].Error)
}

func TestReadAllEmptyDir(t *testing.T) {
	entries, err := ReadAll(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

type assertError string

func (e assertError) Error() string { return string(e) }
