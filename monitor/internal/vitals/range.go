package vitals

import "github.com/vitalsmonitor/vitalsmonitor/pkg/types"

// Normal ranges. Bounds are inclusive.
const (
	TemperatureMin = 95.0
	TemperatureMax = 102.0
	PulseRateMin   = 60.0
	PulseRateMax   = 100.0
	SpO2Min        = 90.0
)

// Alert messages raised for each vital sign.
const (
	MessageTemperature = "Temperature critical!"
	MessagePulseRate   = "Pulse Rate is out of range!"
	MessageSpO2        = "Oxygen Saturation out of range!"
)

// Validator reports whether a single reading is within its normal range.
type Validator func(value float64) bool

// IsTemperatureNormal reports whether t is within 95–102 °F.
func IsTemperatureNormal(t float64) bool {
	return t >= TemperatureMin && t <= TemperatureMax
}

// IsPulseRateNormal reports whether p is within 60–100 bpm.
func IsPulseRateNormal(p float64) bool {
	return p >= PulseRateMin && p <= PulseRateMax
}

// IsSpO2Normal reports whether s is at least 90 %.
func IsSpO2Normal(s float64) bool {
	return s >= SpO2Min
}

// CheckVitalSign applies validator to value. It returns (true, "") when the
// value is normal and (false, message) otherwise.
func CheckVitalSign(value float64, validator Validator, message string) (bool, string) {
	if !validator(value) {
		return false, message
	}
	return true, ""
}

// Check binds a vital sign to its validator and alert message.
type Check struct {
	Vital     types.Vital
	Validator Validator
	Message   string
}

// checks is the fixed evaluation order.
var checks = []Check{
	{Vital: types.VitalTemperature, Validator: IsTemperatureNormal, Message: MessageTemperature},
	{Vital: types.VitalPulseRate, Validator: IsPulseRateNormal, Message: MessagePulseRate},
	{Vital: types.VitalSpO2, Validator: IsSpO2Normal, Message: MessageSpO2},
}
