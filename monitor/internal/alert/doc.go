// Package alert implements the side effect fired when a vital sign is out of
// range. Console prints the alert message followed by a short blinking
// animation; Recorder collects messages in memory for tests and summaries.
// Neither affects the evaluation result.
package alert
