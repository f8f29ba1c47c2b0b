package vitals

import (
	"log/slog"
	"time"

	"github.com/vitalsmonitor/vitalsmonitor/monitor/internal/alert"
	"github.com/vitalsmonitor/vitalsmonitor/monitor/internal/metrics"
	"github.com/vitalsmonitor/vitalsmonitor/pkg/types"
)

// Result is the outcome of one evaluation.
type Result struct {
	// OK is true when every vital sign was within range.
	OK bool

	// Vital, Message and Value describe the first failing check.
	// They are zero when OK is true.
	Vital   types.Vital
	Message string
	Value   float64

	// Event is the alert record for the failing check, nil when OK is true.
	Event *alert.Event
}

// Monitor evaluates readings and fires an alert for the first vital sign that
// is out of range.
//
// Monitor holds no per-reading state; each call is independent. The alerter
// may block (the console alerter sleeps), so Evaluate blocks with it.
type Monitor struct {
	alerter alert.Alerter
	metrics *metrics.Recorder
	now     func() time.Time // injectable for deterministic tests
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithAlerter sets the alert side effect. The default is a console alerter
// on os.Stdout.
func WithAlerter(a alert.Alerter) Option {
	return func(m *Monitor) { m.alerter = a }
}

// WithMetrics records every evaluation in r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(m *Monitor) { m.metrics = r }
}

// New returns a Monitor with the given options applied.
func New(opts ...Option) *Monitor {
	m := &Monitor{
		alerter: alert.NewConsole(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Evaluate checks r in fixed order and stops at the first failure, firing
// that check's alert once. No alert fires when every vital is in range.
func (m *Monitor) Evaluate(r types.Reading) Result {
	for _, c := range checks {
		v := r.Value(c.Vital)
		ok, msg := CheckVitalSign(v, c.Validator, c.Message)
		if ok {
			continue
		}

		ev := alert.NewEvent(c.Vital, msg, v, m.now())
		slog.Warn("vitals: reading out of range",
			"vital", c.Vital,
			"value", v,
			"message", msg,
			"alert_id", ev.ID,
		)
		m.metrics.ObserveAlert(c.Vital)
		m.alerter.Alert(msg)

		return Result{
			Vital:   c.Vital,
			Message: msg,
			Value:   v,
			Event:   &ev,
		}
	}

	m.metrics.ObserveOK()
	return Result{OK: true}
}

// VitalsOK reports whether all three readings are within range, alerting on
// the first one that is not.
func (m *Monitor) VitalsOK(temperature, pulseRate, spo2 float64) bool {
	return m.Evaluate(types.Reading{
		Temperature: temperature,
		PulseRate:   pulseRate,
		SpO2:        spo2,
	}).OK
}

// VitalsOK evaluates the readings with a console-alerting Monitor.
func VitalsOK(temperature, pulseRate, spo2 float64) bool {
	return New().VitalsOK(temperature, pulseRate, spo2)
}
