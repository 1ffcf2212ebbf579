package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vincentAlen/eventchannel"
	"github.com/vincentAlen/eventchannel/internal/alarm"
	"github.com/vincentAlen/eventchannel/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	dump := flag.Bool("dump-config", false, "print an example config and exit")
	flag.Parse()

	if *dump {
		if err := config.Dump(os.Stdout); err != nil {
			log.Fatalf("Failed to dump configuration: %v", err)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := initLogger(cfg.Logging)
	slog.SetDefault(logger)

	opts := []eventchannel.Option{
		eventchannel.WithLogger(logger),
		eventchannel.WithErrorHandler(func(err error) {
			logger.Error("Alarm broadcast failed", "error", err)
		}),
	}
	var promReg *prometheus.Registry
	if cfg.Metrics.Enabled {
		promReg = prometheus.NewRegistry()
		opts = append(opts, eventchannel.WithMetrics(promReg))
	}
	registry := eventchannel.New(opts...)
	logger.Info("Starting alarm clock",
		"registry", registry.ID(),
		"morning", cfg.Alarms.Morning,
		"evening", cfg.Alarms.Evening,
		"metrics", cfg.Metrics.Enabled,
	)

	channels := alarm.Declare(registry)
	clock := alarm.NewClock(channels, logger)
	defer clock.Close()
	recorder := alarm.NewRecorder(channels, logger)
	defer recorder.Close()

	if err := run(cfg, clock, recorder, channels, time.Now()); err != nil {
		logger.Error("Alarm clock stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("Alarm clock finished",
		"rang", len(clock.Rang()),
		"evenings", len(recorder.Evenings()),
		"cleared", recorder.Cleared(),
		"channels", registry.Topics(),
	)
	if promReg != nil {
		logMetrics(logger, promReg)
	}
}

// run fires today's alarms in order: morning, snooze, evening, clear.
func run(cfg *config.Config, clock *alarm.Clock, recorder *alarm.Recorder, ch *alarm.Channels, now time.Time) error {
	morning, err := config.On(now, cfg.Alarms.Morning)
	if err != nil {
		return err
	}
	evening, err := config.On(now, cfg.Alarms.Evening)
	if err != nil {
		return err
	}

	if err := clock.MorningArrived(morning); err != nil {
		return err
	}
	if snooze := cfg.Alarms.Snooze(); snooze > 0 {
		if err := ch.Snoozed.PushEvent(morning, snooze); err != nil {
			return err
		}
	}
	if err := recorder.EveningArrived(evening); err != nil {
		return err
	}
	if cfg.Alarms.ClearAfterFiring {
		return ch.Cleared.PushEvent()
	}
	return nil
}

func initLogger(cfg config.LoggingConfig) *slog.Logger {
	var handler slog.Handler

	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func logMetrics(logger *slog.Logger, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warn("Failed to gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"metric", mf.GetName()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				attrs = append(attrs, "value", m.GetGauge().GetValue())
			}
			logger.Info("Metric", attrs...)
		}
	}
}
