// Package metrics counts evaluations and fired alerts in a private Prometheus
// registry and renders them in the text exposition format.
//
// A nil *Recorder is valid and records nothing, so callers that do not care
// about metrics can pass nil.
package metrics
