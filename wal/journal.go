// Package wal provides an append-only audit journal of workflow executions.
package wal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Stage marks a point in a workflow execution's lifecycle
type Stage string

const (
	StageReceived   Stage = "received"
	StageNotified   Stage = "notified"
	StageClassified Stage = "classified"
	StageRemediated Stage = "remediated"
	StageFallback   Stage = "fallback"
	StageFailed     Stage = "failed"
	StageCompleted  Stage = "completed"
)

// Entry is a single journal record
type Entry struct {
	Timestamp  time.Time       `json:"timestamp"`
	Sequence   int64           `json:"sequence"`
	Stage      Stage           `json:"stage"`
	ResourceID string          `json:"resource_id,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// Journal appends JSON-lines records for audit. Writes are buffered; a
// journal failure must never fail the workflow execution it describes.
type Journal struct {
	mu       sync.Mutex
	file     *os.File
	writer   *bufio.Writer
	sequence int64
	dir      string
}

// Open creates or opens a journal in the specified directory. One file per
// process, named by open time so restarts rotate naturally.
func Open(dir string) (*Journal, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	filename := fmt.Sprintf("remediator-%s.wal", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, filename)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) // #nosec G304 -- operator-chosen directory
	if err != nil {
		return nil, fmt.Errorf("failed to open journal file: %w", err)
	}

	return &Journal{
		file:   file,
		writer: bufio.NewWriter(file),
		dir:    dir,
	}, nil
}

// Append adds an entry to the journal
func (j *Journal) Append(stage Stage, resourceID string, data interface{}) error {
	return j.append(stage, resourceID, data, "")
}

// AppendError adds an entry recording a failure
func (j *Journal) AppendError(stage Stage, resourceID string, data interface{}, failure error) error {
	msg := ""
	if failure != nil {
		msg = failure.Error()
	}
	return j.append(stage, resourceID, data, msg)
}

func (j *Journal) append(stage Stage, resourceID string, data interface{}, errMsg string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.sequence++

	var raw json.RawMessage
	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal journal data: %w", err)
		}
		raw = encoded
	}

	entry := Entry{
		Timestamp:  time.Now(),
		Sequence:   j.sequence,
		Stage:      stage,
		ResourceID: resourceID,
		Data:       raw,
		Error:      errMsg,
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal journal entry: %w", err)
	}

	if _, err := j.writer.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write journal entry: %w", err)
	}

	return j.writer.Flush()
}

// Close flushes and closes the journal
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.writer.Flush(); err != nil {
		return err
	}
	return j.file.Close()
}

// ReadAll returns every entry across the journal files in dir, oldest first.
// Used by tests and operator tooling, not by the workflow itself.
func ReadAll(dir string) ([]Entry, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "remediator-*.wal"))
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, path := range matches {
		file, err := os.Open(path) // #nosec G304 -- paths come from the glob above
		if err != nil {
			return nil, fmt.Errorf("failed to open journal file: %w", err)
		}

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			var entry Entry
			if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
				_ = file.Close()
				return nil, fmt.Errorf("corrupt journal entry in %s: %w", path, err)
			}
			entries = append(entries, entry)
		}
		if err := scanner.Err(); err != nil {
			_ = file.Close()
			return nil, err
		}
		_ = file.Close()
	}

	return entries, nil
}
