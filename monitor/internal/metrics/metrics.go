package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/vitalsmonitor/vitalsmonitor/pkg/types"
)

// Metric names exposed by the Recorder.
const (
	EvaluationsTotal = "vitals_evaluations_total"
	AlertsTotal      = "vitals_alerts_total"
)

// Evaluation outcomes used as the "result" label.
const (
	ResultOK    = "ok"
	ResultAlert = "alert"
)

// Recorder holds the evaluation and alert counters.
type Recorder struct {
	reg         *prometheus.Registry
	evaluations *prometheus.CounterVec
	alerts      *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: EvaluationsTotal,
			Help: "Vital sign evaluations by result.",
		}, []string{"result"}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: AlertsTotal,
			Help: "Alerts fired by vital sign.",
		}, []string{"vital"}),
	}
	r.reg.MustRegister(r.evaluations, r.alerts)
	return r
}

// ObserveOK counts an evaluation where every vital was in range.
func (r *Recorder) ObserveOK() {
	if r == nil {
		return
	}
	r.evaluations.WithLabelValues(ResultOK).Inc()
}

// ObserveAlert counts an evaluation that stopped at vital v.
func (r *Recorder) ObserveAlert(v types.Vital) {
	if r == nil {
		return
	}
	r.evaluations.WithLabelValues(ResultAlert).Inc()
	r.alerts.WithLabelValues(string(v)).Inc()
}

// Gather returns the current metric families.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) {
	if r == nil {
		return nil, nil
	}
	return r.reg.Gather()
}

// WriteText encodes all metric families to w in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	mfs, err := r.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Totals is a read-back of the counters.
type Totals struct {
	Evaluations float64
	OK          float64
	Alerts      map[types.Vital]float64
}

// Totals gathers the registry and sums the counters. Every vital appears in
// Alerts, including those with no alerts.
func (r *Recorder) Totals() (Totals, error) {
	t := Totals{Alerts: make(map[types.Vital]float64, len(types.Vitals))}
	mfs, err := r.Gather()
	if err != nil {
		return t, fmt.Errorf("metrics: gather: %w", err)
	}

	byName := make(map[string]*dto.MetricFamily, len(mfs))
	for _, mf := range mfs {
		byName[mf.GetName()] = mf
	}

	evals := byName[EvaluationsTotal]
	t.Evaluations = Sum(evals)
	t.OK = SumLabel(evals, "result", ResultOK)
	for _, v := range types.Vitals {
		t.Alerts[v] = SumLabel(byName[AlertsTotal], "vital", string(v))
	}
	return t, nil
}

// Sum adds up all counter, gauge, or untyped values in mf.
// Returns 0 if mf is nil.
func Sum(mf *dto.MetricFamily) float64 {
	if mf == nil {
		return 0
	}
	var total float64
	for _, m := range mf.GetMetric() {
		switch {
		case m.Counter != nil:
			total += m.Counter.GetValue()
		case m.Gauge != nil:
			total += m.Gauge.GetValue()
		case m.Untyped != nil:
			total += m.Untyped.GetValue()
		}
	}
	return total
}

// SumLabel adds up the values in mf whose label name equals value.
func SumLabel(mf *dto.MetricFamily, name, value string) float64 {
	if mf == nil {
		return 0
	}
	var total float64
	for _, m := range mf.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == name && lp.GetValue() == value {
				total += m.GetCounter().GetValue() + m.GetGauge().GetValue() + m.GetUntyped().GetValue()
				break
			}
		}
	}
	return total
}
