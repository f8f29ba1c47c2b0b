package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vitalsmonitor/vitalsmonitor/monitor/internal/alert"
	"github.com/vitalsmonitor/vitalsmonitor/monitor/internal/config"
	"github.com/vitalsmonitor/vitalsmonitor/monitor/internal/demo"
	"github.com/vitalsmonitor/vitalsmonitor/monitor/internal/metrics"
	"github.com/vitalsmonitor/vitalsmonitor/monitor/internal/vitals"
	"github.com/vitalsmonitor/vitalsmonitor/pkg/types"
)

func main() {
	configPath := flag.String("config", "", "path to config file; built-in scenarios are used when empty")
	watch := flag.Bool("watch", false, "re-run the scenarios whenever the config file changes")
	noBlink := flag.Bool("no-blink", false, "print alert messages without the blinking animation")
	dumpMetrics := flag.Bool("metrics", false, "print evaluation counters in Prometheus text format after each run")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "err", err)
			os.Exit(1)
		}
	}

	// Human-readable output goes to stdout, logs to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	slog.Info("vitals-demo starting",
		"config", *configPath,
		"scenarios", len(cfg.Demo.Scenarios),
		"blink", cfg.Demo.Alert.Blink && !*noBlink,
	)

	rec := metrics.NewRecorder()
	run := func(c *config.Config) {
		var opts []alert.ConsoleOption
		if !c.Demo.Alert.Blink || *noBlink {
			opts = append(opts, alert.WithoutBlink())
		}
		mon := vitals.New(
			vitals.WithAlerter(alert.NewConsole(opts...)),
			vitals.WithMetrics(rec),
		)
		sum := demo.NewRunner(os.Stdout, mon).Run(c.Demo.Scenarios)
		slog.Info("demo run complete", "passed", sum.Passed, "failed", sum.Failed)

		tot, err := rec.Totals()
		if err != nil {
			slog.Error("failed to read metrics", "err", err)
		} else {
			slog.Info("alert totals",
				"evaluations", tot.Evaluations,
				"temperature", tot.Alerts[types.VitalTemperature],
				"pulse_rate", tot.Alerts[types.VitalPulseRate],
				"spo2", tot.Alerts[types.VitalSpO2],
			)
		}

		if *dumpMetrics {
			if err := rec.WriteText(os.Stdout); err != nil {
				slog.Error("failed to write metrics", "err", err)
			}
		}
	}

	run(cfg)

	if !*watch {
		return
	}
	if *configPath == "" {
		slog.Error("-watch requires -config")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Runs are serialised on the watcher goroutine.
	if err := config.Watch(ctx, *configPath, run); err != nil {
		slog.Error("config watcher stopped", "err", err)
		os.Exit(1)
	}
	slog.Info("vitals-demo shutting down")
}
