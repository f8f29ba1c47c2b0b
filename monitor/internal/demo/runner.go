package demo

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vitalsmonitor/vitalsmonitor/monitor/internal/config"
	"github.com/vitalsmonitor/vitalsmonitor/monitor/internal/vitals"
)

const (
	header    = "=== Vitals Monitoring System Demo ==="
	passLine  = "✅ All vitals are normal!"
	failLine  = "❌ Vitals are not normal!"
	separator = 50
)

// Outcome is the evaluation result for one scenario.
type Outcome struct {
	Scenario config.Scenario
	Result   vitals.Result
}

// Summary aggregates a demo run.
type Summary struct {
	Passed   int
	Failed   int
	Outcomes []Outcome
}

// Runner prints scenario reports to out and evaluates them with monitor.
type Runner struct {
	out     io.Writer
	monitor *vitals.Monitor
}

// NewRunner returns a Runner. The monitor's alerter usually writes to the
// same stream as out so alerts appear inline.
func NewRunner(out io.Writer, monitor *vitals.Monitor) *Runner {
	return &Runner{out: out, monitor: monitor}
}

// Run evaluates each scenario in order and returns the summary.
func (r *Runner) Run(scenarios []config.Scenario) Summary {
	fmt.Fprintf(r.out, "%s\n\n", header)

	sum := Summary{Outcomes: make([]Outcome, 0, len(scenarios))}
	for _, sc := range scenarios {
		fmt.Fprintf(r.out, "\n--- Testing: %s ---\n", sc.Description)
		fmt.Fprintln(r.out, sc.Reading.String())

		res := r.monitor.Evaluate(sc.Reading)
		if res.OK {
			sum.Passed++
			fmt.Fprintln(r.out, passLine)
		} else {
			sum.Failed++
			fmt.Fprintln(r.out, failLine)
		}
		fmt.Fprintln(r.out, strings.Repeat("-", separator))

		slog.Debug("demo: scenario evaluated",
			"scenario", sc.Description,
			"ok", res.OK,
			"vital", res.Vital,
		)
		sum.Outcomes = append(sum.Outcomes, Outcome{Scenario: sc, Result: res})
	}

	fmt.Fprintf(r.out, "\nSummary: %d passed, %d failed\n", sum.Passed, sum.Failed)
	return sum
}
