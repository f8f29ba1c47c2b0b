package types

import "fmt"

// Vital names one of the monitored vital signs.
type Vital string

// Vital signs in the order the evaluator checks them.
const (
	VitalTemperature Vital = "temperature"
	VitalPulseRate   Vital = "pulse_rate"
	VitalSpO2        Vital = "spo2"
)

// Vitals lists every Vital in evaluation order.
var Vitals = []Vital{VitalTemperature, VitalPulseRate, VitalSpO2}

// Reading holds one sample of each vital sign.
type Reading struct {
	// Temperature is the body temperature in degrees Fahrenheit.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// PulseRate is the heart rate in beats per minute.
	PulseRate float64 `json:"pulse_rate" yaml:"pulse_rate"`

	// SpO2 is the blood oxygen saturation percentage.
	SpO2 float64 `json:"spo2" yaml:"spo2"`
}

// Value returns the sample for v, or 0 for an unknown Vital.
func (r Reading) Value(v Vital) float64 {
	switch v {
	case VitalTemperature:
		return r.Temperature
	case VitalPulseRate:
		return r.PulseRate
	case VitalSpO2:
		return r.SpO2
	default:
		return 0
	}
}

// String formats the reading the way the demo prints it.
func (r Reading) String() string {
	return fmt.Sprintf("Temperature: %v°F, Pulse: %v bpm, SpO2: %v%%",
		r.Temperature, r.PulseRate, r.SpO2)
}
