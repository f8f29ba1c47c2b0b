// Package vitals checks temperature, pulse rate and SpO2 readings against
// fixed normal ranges.
//
// range.go provides the pure predicates IsTemperatureNormal, IsPulseRateNormal
// and IsSpO2Normal together with CheckVitalSign, which pairs a predicate with
// the message to raise when it fails.
//
// monitor.go provides Monitor, which evaluates the three checks in fixed
// order (temperature, pulse rate, SpO2), stops at the first failure and fires
// exactly one alert for it. VitalsOK is the package-level shortcut using a
// Monitor that alerts on the console.
//
// Ranges: temperature 95–102 °F inclusive, pulse rate 60–100 bpm inclusive,
// SpO2 ≥ 90 %.
package vitals
