package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Valid(t *testing.T) {
	yaml := `
demo:
  alert:
    blink: false
  scenarios:
    - description: Fever
      temperature: 103.2
      pulse_rate: 88
      spo2: 97
    - description: Bradycardia
      temperature: 98.1
      pulse_rate: 48
      spo2: 96
log:
  level: debug
`
	cfg := loadFromString(t, yaml)

	if cfg.Demo.Alert.Blink {
		t.Error("alert.blink: got true, want false")
	}
	if len(cfg.Demo.Scenarios) != 2 {
		t.Fatalf("scenarios: got %d, want 2", len(cfg.Demo.Scenarios))
	}
	sc := cfg.Demo.Scenarios[0]
	if sc.Description != "Fever" {
		t.Errorf("description: got %q", sc.Description)
	}
	if sc.Temperature != 103.2 || sc.PulseRate != 88 || sc.SpO2 != 97 {
		t.Errorf("reading: got %+v", sc.Reading)
	}
	if cfg.Demo.Scenarios[1].PulseRate != 48 {
		t.Errorf("scenarios[1].pulse_rate: got %v", cfg.Demo.Scenarios[1].PulseRate)
	}
	if cfg.Log.SlogLevel() != slog.LevelDebug {
		t.Errorf("log level: got %v, want debug", cfg.Log.SlogLevel())
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := loadFromString(t, "log: {}\n")

	if !cfg.Demo.Alert.Blink {
		t.Error("default alert.blink: got false, want true")
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("default log.level: got %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	want := DefaultScenarios()
	if len(cfg.Demo.Scenarios) != len(want) {
		t.Fatalf("default scenarios: got %d, want %d", len(cfg.Demo.Scenarios), len(want))
	}
	for i := range want {
		if cfg.Demo.Scenarios[i] != want[i] {
			t.Errorf("scenarios[%d]: got %+v, want %+v", i, cfg.Demo.Scenarios[i], want[i])
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.Demo.Scenarios) != 6 {
		t.Errorf("scenarios: got %d, want 6", len(cfg.Demo.Scenarios))
	}
	if !cfg.Demo.Alert.Blink {
		t.Error("alert.blink: got false, want true")
	}
	if err := validate(cfg); err != nil {
		t.Errorf("validate(Default()): %v", err)
	}
}

func TestLoad_MissingDescription(t *testing.T) {
	yaml := `
demo:
  scenarios:
    - temperature: 98.6
      pulse_rate: 70
      spo2: 98
`
	if _, err := loadStringErr(t, yaml); err == nil {
		t.Fatal("expected error for missing description, got nil")
	}
}

func TestLoad_UnknownLogLevel(t *testing.T) {
	if _, err := loadStringErr(t, "log:\n  level: verbose\n"); err == nil {
		t.Fatal("expected error for unknown log level, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	if _, err := loadStringErr(t, "demo: [unterminated\n"); err == nil {
		t.Fatal("expected error for invalid yaml, got nil")
	}
}

func TestLoad_NonNumericReading(t *testing.T) {
	yaml := `
demo:
  scenarios:
    - description: bad
      temperature: hot
`
	if _, err := loadStringErr(t, yaml); err == nil {
		t.Fatal("expected error for non-numeric temperature, got nil")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	for _, content := range []string{"", "\n  \n"} {
		_, err := loadStringErr(t, content)
		if !errors.Is(err, ErrEmptyFile) {
			t.Errorf("Load(%q): got %v, want ErrEmptyFile", content, err)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yaml"); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := (LogConfig{Level: tc.level}).SlogLevel(); got != tc.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tc.level, got, tc.want)
		}
	}
}

// loadFromString writes yaml to a temp file and calls Load, failing on error.
func loadFromString(t *testing.T, content string) *Config {
	t.Helper()
	cfg, err := loadStringErr(t, content)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	return cfg
}

// loadStringErr writes yaml to a temp file and calls Load, returning any error.
func loadStringErr(t *testing.T, content string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return Load(path)
}
