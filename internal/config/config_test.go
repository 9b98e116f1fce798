package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielpatrickdp/eres666/internal/fault"
	"github.com/danielpatrickdp/eres666/internal/pipeline"
)

func TestDefaultScenarioMatchesPipeline(t *testing.T) {
	got := DefaultConfig().Scenario.ToScenario()
	if diff := cmp.Diff(pipeline.DefaultScenario(), got); diff != "" {
		t.Fatalf("scenario mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != DefaultConfig().Server.Addr {
		t.Fatalf("expected default addr, got %q", cfg.Server.Addr)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eres.yaml")
	data := []byte(`
scenario:
  mass_kg: 60
  bio_signal_strength: 0.5
  time_seconds: 1000
server:
  addr: "127.0.0.1:9000"
logging:
  level: debug
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := cfg.Scenario.ToScenario()
	if s.MassKg != 60 || s.BioSignalStrength != 0.5 {
		t.Fatalf("unexpected scenario: %+v", s)
	}
	if s.TimeSeconds != 1000 {
		t.Fatalf("time_seconds must win over default years, got %f", s.TimeSeconds)
	}
	// Untouched keys keep their defaults.
	if s.Merit != 150 || s.Value != 6 {
		t.Fatalf("expected defaults for unset keys, got %+v", s)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected server/logging: %+v %+v", cfg.Server, cfg.Logging)
	}
}

func TestExplicitZeroSecondsReachesCore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eres.yaml")
	if err := os.WriteFile(path, []byte("scenario:\n  time_seconds: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := cfg.Scenario.ToScenario()
	if s.TimeSeconds != 0 {
		t.Fatalf("explicit time_seconds: 0 must not fall back to years, got %f", s.TimeSeconds)
	}
	if _, err := pipeline.Run(s); !errors.Is(err, &fault.Error{Kind: fault.DivisionByZero, Field: "T_time"}) {
		t.Fatalf("expected T_time DivisionByZero, got %v", err)
	}
}

func TestYearsConvertToSeconds(t *testing.T) {
	s := DefaultConfig().Scenario.ToScenario()
	if s.TimeSeconds != 80*pipeline.SecondsPerYear {
		t.Fatalf("expected 80 years in seconds, got %f", s.TimeSeconds)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("scenario: [unclosed"), 0644)
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ERES_ADDR", "localhost:7777")
	t.Setenv("ERES_LEDGER", "/tmp/ledger.db")
	t.Setenv("ERES_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != "localhost:7777" || cfg.Ledger.Path != "/tmp/ledger.db" || cfg.Logging.Level != "warn" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestValidateLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected invalid level error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "eres.yaml")
	cfg := DefaultConfig()
	cfg.Ledger.Path = "runs.db"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
