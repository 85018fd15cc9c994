// Package config handles TOML configuration for the remediator.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	AWS         AWSConfig         `toml:"aws"`
	SNS         SNSConfig         `toml:"sns"`
	SQS         SQSConfig         `toml:"sqs"`
	Remediation RemediationConfig `toml:"remediation"`
	OTEL        OTELConfig        `toml:"otel"`
	Journal     JournalConfig     `toml:"journal"`
	Log         LogConfig         `toml:"log"`
}

// AWSConfig holds AWS provider settings.
type AWSConfig struct {
	Region  string `toml:"region"`
	Profile string `toml:"profile"`
}

// SNSConfig holds notification channel settings.
type SNSConfig struct {
	TopicARN string `toml:"topic_arn"`
}

// SQSConfig holds event source settings.
type SQSConfig struct {
	QueueURL    string `toml:"queue_url"`
	WaitSeconds int32  `toml:"wait_seconds"`
	BatchSize   int32  `toml:"batch_size"`
}

// RemediationConfig holds the desired values consumed by the remediation
// actions. Both are optional at load time; an action invoked without its
// desired value fails fatally at that point, not here.
type RemediationConfig struct {
	DesiredParameterGroup      string `toml:"desired_parameter_group"`
	DesiredBackupRetentionDays int    `toml:"desired_backup_retention_days"`
}

// OTELConfig holds OpenTelemetry settings.
type OTELConfig struct {
	Endpoint    string        `toml:"endpoint"`
	Insecure    bool          `toml:"insecure"`
	ServiceName string        `toml:"service_name"`
	Traces      TracesConfig  `toml:"traces"`
	Metrics     MetricsConfig `toml:"metrics"`
}

// TracesConfig holds tracing settings.
type TracesConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate float64 `toml:"sample_rate"`
}

// MetricsConfig holds metrics settings.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// JournalConfig holds audit journal settings.
type JournalConfig struct {
	Dir string `toml:"dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// Load reads and parses a TOML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.OTEL.ServiceName == "" {
		cfg.OTEL.ServiceName = "docdb-remediator"
	}
	if cfg.OTEL.Traces.SampleRate == 0 {
		cfg.OTEL.Traces.SampleRate = 1.0
	}
	if cfg.SQS.WaitSeconds == 0 {
		cfg.SQS.WaitSeconds = int32((20 * time.Second).Seconds())
	}
	if cfg.SQS.BatchSize == 0 {
		cfg.SQS.BatchSize = 10
	}
	if cfg.Journal.Dir == "" {
		cfg.Journal.Dir = "./journal"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate ensures config has required fields
func (c *Config) Validate() error {
	if c.AWS.Region == "" {
		return fmt.Errorf("aws.region is required")
	}
	if c.SNS.TopicARN == "" {
		return fmt.Errorf("sns.topic_arn is required")
	}
	return nil
}
