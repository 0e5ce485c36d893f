package scheduler

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"TriOracle/internal/metrics"
	"TriOracle/internal/notifier"
	"TriOracle/pkg/logger"
)

// Sender delivers a message to the briefing chat.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Evaluator runs command lines.
type Evaluator interface {
	Evaluate(ctx context.Context, line string) (string, error)
	Handle(ctx context.Context, text string) string
}

// Scheduler runs the briefing on a cron and answers chat commands.
type Scheduler struct {
	Cron     *cron.Cron
	Router   Evaluator
	Notifier Sender
	Presets  []string
	Ctx      context.Context

	log *logger.Logger
	now func() time.Time
	mu  sync.Mutex // one briefing at a time
}

// NewScheduler creates a new Scheduler. presets are the command lines evaluated by every briefing.
func NewScheduler(ctx context.Context, router Evaluator, sender Sender, presets []string, log *logger.Logger) *Scheduler {
	log = log.With("component", "scheduler")
	cl := cronLogger{log}
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds(), cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		Router:   router,
		Notifier: sender,
		Presets:  presets,
		Ctx:      ctx,
		log:      log,
		now:      time.Now,
	}
}

// RegisterBriefing schedules the briefing. An empty preset list registers nothing.
func (s *Scheduler) RegisterBriefing(spec string) error {
	if len(s.Presets) == 0 {
		s.log.Warn("no briefing presets configured, briefing disabled")
		return nil
	}
	if _, err := s.Cron.AddFunc(spec, s.briefingTask); err != nil {
		return fmt.Errorf("register briefing task: %w", err)
	}
	s.log.Infow("briefing registered", "cron", spec, "presets", len(s.Presets))
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for a running briefing.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

// RunBriefingNow executes the briefing immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunBriefingNow() {
	s.briefingTask()
}

// Briefing evaluates every preset and joins the panels. failed counts presets
// that could not be evaluated; their error replaces the panel.
func (s *Scheduler) Briefing(ctx context.Context) (text string, failed int) {
	panels := make([]string, 0, len(s.Presets))
	for _, p := range s.Presets {
		out, err := s.Router.Evaluate(ctx, p)
		if err != nil {
			failed++
			s.log.Warnw("briefing preset failed", "preset", p, "error", err)
			panels = append(panels, "❌ "+html.EscapeString(err.Error())+"\n")
			continue
		}
		if out != "" {
			panels = append(panels, out)
		}
	}
	return notifier.FormatBriefing(s.now(), panels), failed
}

func (s *Scheduler) briefingTask() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.Presets) == 0 {
		metrics.BriefingRuns.WithLabelValues("empty").Inc()
		return
	}
	s.log.Info("running briefing")
	text, failed := s.Briefing(s.Ctx)
	if failed == len(s.Presets) {
		s.log.Errorw("every briefing preset failed", "presets", len(s.Presets))
	}
	if err := s.trySend(text); err != nil {
		metrics.BriefingRuns.WithLabelValues("failed").Inc()
		return
	}
	metrics.BriefingRuns.WithLabelValues("sent").Inc()
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, text string) string {
	fields := strings.Fields(text)
	if len(fields) > 0 && strings.EqualFold(strings.SplitN(fields[0], "@", 2)[0], "/briefing") {
		if len(s.Presets) == 0 {
			return "No briefing presets configured."
		}
		out, _ := s.Briefing(ctx)
		return out
	}
	return s.Router.Handle(ctx, text)
}

func (s *Scheduler) trySend(text string) error {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.log.Errorw("send notification", "error", err)
		return err
	}
	return nil
}

// cronLogger adapts the zap logger to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
