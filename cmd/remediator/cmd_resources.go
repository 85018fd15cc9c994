package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fleetops/docdb-remediator/providers"
	"github.com/fleetops/docdb-remediator/types"
)

var (
	resourcesType   string
	resourcesOutput string
)

// resourcesCmd represents the resources command
var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List DocumentDB resources in the configured region",
	Long: `List the DocumentDB inventory the remediator operates on.

Shows each resource's durable identifier alongside its current name,
which is what the workflow resolves at remediation time. Useful for
checking what an incoming event's resource id currently maps to.`,
	Example: `  remediator resources                    # List clusters
  remediator resources --type instance    # List instances
  remediator resources --output json      # JSON output`,
	RunE: runResources,
}

func init() {
	rootCmd.AddCommand(resourcesCmd)

	resourcesCmd.Flags().StringVarP(&resourcesType, "type", "t", "cluster", "Resource type: cluster, instance")
	resourcesCmd.Flags().StringVarP(&resourcesOutput, "output", "o", "table", "Output format: table, json")
}

func runResources(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resourceType := types.ResourceType(resourcesType)
	if resourceType != types.ResourceTypeCluster && resourceType != types.ResourceTypeInstance {
		return fmt.Errorf("invalid resource type: %s (must be cluster or instance)", resourcesType)
	}

	ctx := context.Background()
	plane, err := providers.GetProvider(ctx, "aws", providers.ProviderConfig{
		Region:  cfg.AWS.Region,
		Profile: cfg.AWS.Profile,
	})
	if err != nil {
		return fmt.Errorf("create control plane: %w", err)
	}

	resources, err := plane.ListResources(ctx, resourceType)
	if err != nil {
		return fmt.Errorf("list resources: %w", err)
	}

	switch resourcesOutput {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resources)
	case "table":
		printResourceTable(resources)
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (must be table or json)", resourcesOutput)
	}
}

func printResourceTable(resources []types.ManagedResource) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "IDENTIFIER\tNAME\tSTATUS\tDELETION PROTECTION\tPARAMETER GROUP\tRETENTION DAYS")
	for _, r := range resources {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\t%d\n",
			r.Identifier, r.CurrentName, r.Status,
			r.DeletionProtection, r.ParameterGroup, r.BackupRetentionPeriod)
	}
	_ = w.Flush()
	fmt.Printf("\n%d resources\n", len(resources))
}
