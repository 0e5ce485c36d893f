package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TriOracle/internal/analysis"
	"TriOracle/internal/command"
	"TriOracle/pkg/logger"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeSender) SendWithRetry(_ context.Context, text string, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

func newTestScheduler(sender Sender, presets ...string) *Scheduler {
	router := command.NewRouter(analysis.NewEngine(analysis.DefaultThresholds()), 100, logger.Nop())
	s := NewScheduler(context.Background(), router, sender, presets, logger.Nop())
	s.now = func() time.Time { return time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC) }
	return s
}

func TestRunBriefingNow(t *testing.T) {
	sender := &fakeSender{}
	s := newTestScheduler(sender, "/pressure 5500000 4500000", "/fib 110000 109000 109550 4h")

	s.RunBriefingNow()

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.True(t, strings.HasPrefix(msg, "🔱 <b>TriOracle Briefing</b> | 2025-03-01 08:00"))
	assert.Contains(t, msg, "Positioning Gauge")
	assert.Contains(t, msg, "4h (240 min)")
}

func TestBriefing_FailedPresetIsReported(t *testing.T) {
	s := newTestScheduler(&fakeSender{}, "/pressure 1", "/market 109550 109400 110000 109000", "/nope")

	text, failed := s.Briefing(context.Background())
	assert.Equal(t, 2, failed)
	assert.Contains(t, text, "❌ /pressure: wrong number of arguments")
	assert.Contains(t, text, "unknown command: /nope")
	assert.Contains(t, text, "Market Structure")
}

func TestRunBriefingNow_SendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("telegram down")}
	s := newTestScheduler(sender, "/pressure 1 1")

	s.RunBriefingNow()
	assert.Empty(t, sender.sent)
}

func TestRegisterBriefing(t *testing.T) {
	s := newTestScheduler(&fakeSender{}, "/pressure 1 1")
	require.NoError(t, s.RegisterBriefing("0 0 8 * * *"))
	assert.Len(t, s.Cron.Entries(), 1)
	assert.Error(t, s.RegisterBriefing("not a cron"))

	empty := newTestScheduler(&fakeSender{})
	require.NoError(t, empty.RegisterBriefing("0 0 8 * * *"))
	assert.Empty(t, empty.Cron.Entries())

	empty.RunBriefingNow()
}

func TestHandleCommand(t *testing.T) {
	s := newTestScheduler(&fakeSender{}, "/pressure 100 0")
	ctx := context.Background()

	assert.Contains(t, s.HandleCommand(ctx, "/briefing"), "EXTREME LONGS")
	assert.Contains(t, s.HandleCommand(ctx, "/briefing@TriOracleBot"), "TriOracle Briefing")
	assert.Contains(t, s.HandleCommand(ctx, "/pressure 0 100"), "EXTREME SHORTS")
	assert.Contains(t, s.HandleCommand(ctx, "/help"), "Available commands")

	none := newTestScheduler(&fakeSender{})
	assert.Equal(t, "No briefing presets configured.", none.HandleCommand(ctx, "/briefing"))
}
