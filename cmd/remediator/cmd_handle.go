package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetops/docdb-remediator/internal/source"
	"github.com/fleetops/docdb-remediator/telemetry"
	"github.com/fleetops/docdb-remediator/types"
)

// handleCmd represents the handle command
var handleCmd = &cobra.Command{
	Use:   "handle [file]",
	Short: "Run one remediation workflow for an event read from a file",
	Long: `Run a single remediation workflow for a compliance event.

The event is read from the given file, or from stdin when the argument
is "-" or omitted. Both the raw queue envelope and the bare event JSON
are accepted, so messages can be re-driven straight from a dead-letter
queue dump.`,
	Example: `  remediator handle event.json        # Event from file
  cat event.json | remediator handle  # Event from stdin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHandle,
}

func init() {
	rootCmd.AddCommand(handleCmd)
}

func runHandle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	body, err := readEventInput(args)
	if err != nil {
		return err
	}

	event, err := decodeEvent(body)
	if err != nil {
		return err
	}

	if !event.IsNonCompliant() {
		fmt.Println("event is compliant, nothing to remediate")
		return nil
	}

	logger := telemetry.NewLogger("docdb-remediator")
	ctx := context.Background()

	engine, journal, err := buildEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = journal.Close() }()

	outcome, err := engine.HandleComplianceEvent(ctx, event)
	if err != nil {
		return fmt.Errorf("workflow failed: %w", err)
	}

	fmt.Printf("%s\n", outcome.Message())
	return nil
}

func readEventInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0]) // #nosec G304 -- path is intentional user input
}

// decodeEvent accepts either the full queue envelope or a bare event.
func decodeEvent(body []byte) (types.ComplianceEvent, error) {
	if event, err := source.ParseEnvelope(body); err == nil {
		return event, nil
	}

	var event types.ComplianceEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return types.ComplianceEvent{}, fmt.Errorf("decode event: %w", err)
	}
	if err := event.Validate(); err != nil {
		return types.ComplianceEvent{}, fmt.Errorf("invalid event: %w", err)
	}
	return event, nil
}
