package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vitalsmonitor/vitalsmonitor/pkg/types"
)

// DefaultLogLevel is used when log.level is absent.
const DefaultLogLevel = "info"

// Config is the top-level demo configuration.
type Config struct {
	Demo DemoConfig `yaml:"demo"`
	Log  LogConfig  `yaml:"log"`
}

// DemoConfig holds the scenarios the demo runs and how alerts are shown.
type DemoConfig struct {
	// Scenarios is the ordered list of readings to evaluate.
	Scenarios []Scenario `yaml:"scenarios"`

	// Alert controls the console alert presentation.
	Alert AlertConfig `yaml:"alert"`
}

// Scenario is one named set of readings.
type Scenario struct {
	Description   string `yaml:"description"`
	types.Reading `yaml:",inline"`
}

// AlertConfig controls the console alerter.
type AlertConfig struct {
	// Blink enables the six-cycle blinking animation after each alert message.
	Blink bool `yaml:"blink"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`
}

// SlogLevel maps Level to a slog.Level. Unknown values map to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultScenarios returns the built-in demo scenarios.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Description: "Normal vitals", Reading: types.Reading{Temperature: 98.6, PulseRate: 70, SpO2: 98}},
		{Description: "High temperature", Reading: types.Reading{Temperature: 103, PulseRate: 70, SpO2: 98}},
		{Description: "High pulse rate", Reading: types.Reading{Temperature: 98.6, PulseRate: 101, SpO2: 98}},
		{Description: "Low pulse rate", Reading: types.Reading{Temperature: 98.6, PulseRate: 59, SpO2: 98}},
		{Description: "Low oxygen saturation", Reading: types.Reading{Temperature: 98.6, PulseRate: 70, SpO2: 89}},
		{Description: "Multiple issues", Reading: types.Reading{Temperature: 94, PulseRate: 101, SpO2: 85}},
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := defaults()
	cfg.Demo.Scenarios = DefaultScenarios()
	return cfg
}

// ErrEmptyFile is returned by Load for a file with no content, such as one
// read between an editor's truncate and write.
var ErrEmptyFile = errors.New("config: file is empty")

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if len(cfg.Demo.Scenarios) == 0 {
		cfg.Demo.Scenarios = DefaultScenarios()
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// defaults returns a Config pre-populated with default values.
func defaults() *Config {
	return &Config{
		Demo: DemoConfig{
			Alert: AlertConfig{Blink: true},
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// validate checks required fields and enums.
func validate(cfg *Config) error {
	for i, sc := range cfg.Demo.Scenarios {
		if strings.TrimSpace(sc.Description) == "" {
			return fmt.Errorf("demo.scenarios[%d]: description is required", i)
		}
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q unknown: want debug|info|warn|error", cfg.Log.Level)
	}
	return nil
}
