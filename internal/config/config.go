// Package config loads the YAML configuration for the eres tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/eres666/internal/pipeline"
)

// Config holds all tool configuration.
type Config struct {
	Scenario ScenarioConfig `yaml:"scenario"`
	Server   ServerConfig   `yaml:"server"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ScenarioConfig mirrors pipeline.Scenario. Time may be given in years or in
// seconds; seconds win when both are present, including an explicit zero.
type ScenarioConfig struct {
	MassKg            float64  `yaml:"mass_kg"`
	BioSignalStrength float64  `yaml:"bio_signal_strength"`
	HueDeg            float64  `yaml:"hue_deg"`
	Value             float64  `yaml:"value"`
	Chroma            float64  `yaml:"chroma"`
	Resources         float64  `yaml:"resources"`
	Purpose           float64  `yaml:"purpose"`
	Merit             float64  `yaml:"merit"`
	TimeYears         *float64 `yaml:"time_years,omitempty"`
	TimeSeconds       *float64 `yaml:"time_seconds,omitempty"`
	SpaceM2           float64  `yaml:"space_m2"`
}

// ServerConfig configures the gRPC verifier.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LedgerConfig configures the optional SQLite run ledger. Empty path disables it.
type LedgerConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	s := pipeline.DefaultScenario()
	return &Config{
		Scenario: ScenarioConfig{
			MassKg:            s.MassKg,
			BioSignalStrength: s.BioSignalStrength,
			HueDeg:            s.HueDeg,
			Value:             s.Value,
			Chroma:            s.Chroma,
			Resources:         s.Resources,
			Purpose:           s.Purpose,
			Merit:             s.Merit,
			TimeYears:         ptr(80.0),
			SpaceM2:           s.SpaceM2,
		},
		Server: ServerConfig{
			Addr: "localhost:50061",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	c.Server.Addr = envOr("ERES_ADDR", c.Server.Addr)
	c.Ledger.Path = envOr("ERES_LEDGER", c.Ledger.Path)
	c.Logging.Level = envOr("ERES_LOG_LEVEL", c.Logging.Level)
}

// Validate checks the fields the tools cannot run without. Numeric scenario
// values are left to the core, which rejects them with typed faults.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	return nil
}

// ToScenario converts the scenario section, turning years into seconds.
func (s ScenarioConfig) ToScenario() pipeline.Scenario {
	var seconds float64
	switch {
	case s.TimeSeconds != nil:
		seconds = *s.TimeSeconds
	case s.TimeYears != nil:
		seconds = *s.TimeYears * pipeline.SecondsPerYear
	}
	return pipeline.Scenario{
		MassKg:            s.MassKg,
		BioSignalStrength: s.BioSignalStrength,
		HueDeg:            s.HueDeg,
		Value:             s.Value,
		Chroma:            s.Chroma,
		Resources:         s.Resources,
		Purpose:           s.Purpose,
		Merit:             s.Merit,
		TimeSeconds:       seconds,
		SpaceM2:           s.SpaceM2,
	}
}

func ptr[T any](v T) *T { return &v }

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
