package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0"
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "remediator",
		Short: "DocumentDB compliance remediation engine",
		Long: `Remediator - DocumentDB Compliance Remediation Engine

Remediator listens for configuration compliance events, classifies the
violated rule, and applies the corrective change to the offending
DocumentDB cluster. Every execution ends with exactly one notification
describing what happened, including when the resource has already
vanished or the rule is not recognized.`,
		Version: version,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the root command
func init() {
	rootCmd.SetVersionTemplate(`Remediator {{.Version}} - DocumentDB Compliance Remediation Engine
`)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "remediator.toml", "Path to TOML config file")
}
