package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"TriOracle/internal/analysis"
	"TriOracle/internal/command"
	"TriOracle/internal/config"
	"TriOracle/internal/metrics"
	"TriOracle/internal/notifier"
	"TriOracle/internal/scheduler"
	"TriOracle/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "trioracle: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load config
	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Env); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()
	log.Info("TriOracle starting...")

	metrics.Init()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := metrics.Serve(ctx, cfg.Metrics.Addr); err != nil {
			log.Errorw("metrics server stopped", "addr", cfg.Metrics.Addr, "error", err)
		}
	}()
	log.Infow("metrics listening", "addr", cfg.Metrics.Addr)

	engine := analysis.NewEngine(cfg.Thresholds())
	router := command.NewRouter(engine, cfg.Analysis.DefaultBankroll, log)

	// Init Telegram notifier
	tn, err := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
	if err != nil {
		return fmt.Errorf("init telegram: %w", err)
	}

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, router, tn, cfg.Briefing.Presets, log)
	if err := sched.RegisterBriefing(cfg.Schedule.BriefingCron); err != nil {
		return fmt.Errorf("register cron tasks: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)

	if cfg.Schedule.RunOnStart {
		log.Info("run_on_start enabled, executing briefing now")
		go sched.RunBriefingNow()
	}

	log.Info("TriOracle is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	cancel()
	log.Info("TriOracle stopped")
	return nil
}
