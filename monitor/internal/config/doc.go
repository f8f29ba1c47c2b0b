// Package config loads and watches the vitals demo configuration file.
//
// Top-level types:
//   - Config{Demo, Log}: full config tree parsed from YAML
//   - DemoConfig: scenarios [] and alert settings
//   - Scenario: description plus temperature, pulse_rate and spo2 readings
//   - AlertConfig: blink toggles the console animation (default true)
//   - LogConfig: level (debug|info|warn|error, default info)
//
// Thresholds are fixed in package vitals and cannot be set here.
//
// Load(path) applies defaults, parses the YAML file and validates it. When
// no scenarios are listed the built-in demo scenarios are used.
//
// Watch(ctx, path, onChange) uses fsnotify to detect file changes and calls
// onChange with the newly parsed Config.
package config
