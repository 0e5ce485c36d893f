package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TriOracle/internal/analysis"
	"TriOracle/pkg/logger"
)

func newTestRouter() *Router {
	return NewRouter(analysis.NewEngine(analysis.DefaultThresholds()), 100, logger.Nop())
}

func TestEvaluate(t *testing.T) {
	r := newTestRouter()
	ctx := context.Background()

	tests := []struct {
		name string
		line string
		want string
	}{
		{"arbitrage found", "/arb 2.2,2.3", "ARBITRAGE FOUND"},
		{"arbitrage custom bankroll", "/arb 2.5,2.5 1000", "stake 500.00"},
		{"arbitrage none", "/arb 1.5,2.5", "NO ARBITRAGE"},
		{"arbitrage bad count in result", "/arb 2.0", "❌"},
		{"pressure", "/pressure 5500000 4500000", "BALANCED"},
		{"market", "/market 109550 109400 110000 109000", "AETOS ACTIVE"},
		{"fibonacci default timeframe", "/fib 110000 109000 109550", "1h (60 min)"},
		{"fibonacci upper timeframe", "/fib 110000 109000 109550 1D", "1d (1440 min)"},
		{"technical short series", "/ta 1,2 1,2 1,2 1,2", "MIXED"},
		{"volume", "/volume 3000 100,100,100,100,100,1000,1000,1000,1000,1000 1,2,3 10,10,10", "BREAKOUT WATCH"},
		{"bot suffix", "/pressure@TriOracleBot 100 0", "EXTREME LONGS"},
		{"help", "/help", "Available commands"},
		{"start", "/start", "Available commands"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Evaluate(ctx, tt.line)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestEvaluate_VolumePriceDefaultsToLastPrice(t *testing.T) {
	r := newTestRouter()
	ctx := context.Background()

	implicit, err := r.Evaluate(ctx, "/volume 10 5,5 1,2,4 1,1,2")
	require.NoError(t, err)
	explicit, err := r.Evaluate(ctx, "/volume 10 5,5 1,2,4 1,1,2 4")
	require.NoError(t, err)
	assert.Equal(t, explicit, implicit)

	below, err := r.Evaluate(ctx, "/volume 10 5,5 1,2,4 1,1,2 1")
	require.NoError(t, err)
	assert.Contains(t, below, "(below,")
}

func TestEvaluate_Errors(t *testing.T) {
	r := newTestRouter()
	ctx := context.Background()

	tests := []struct {
		name string
		line string
	}{
		{"missing args", "/pressure 100"},
		{"too many args", "/market 1 2 3 4 5"},
		{"negative oi", "/pressure -5 10"},
		{"bad number", "/fib 110000 abc 109550"},
		{"empty series item", "/ta 1,,2 1,2 1,2 1,2"},
		{"mismatched dmi series", "/ta 1,2,3 1,2 1,2,3 1,2,3"},
		{"non-finite", "/market NaN 1 2 3"},
		{"bad bankroll", "/arb 2,3 lots"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Evaluate(ctx, tt.line)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.Contains(t, err.Error(), "usage: /")
		})
	}

	_, err := r.Evaluate(ctx, "/moon")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = r.Evaluate(cancelled, "/pressure 1 1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHandle(t *testing.T) {
	r := newTestRouter()
	ctx := context.Background()

	assert.Empty(t, r.Handle(ctx, "hello there"))
	assert.Empty(t, r.Handle(ctx, "   "))
	assert.Equal(t, Help(), r.Handle(ctx, "/moon"))

	reply := r.Handle(ctx, "/pressure 100")
	assert.True(t, strings.HasPrefix(reply, "❌ /pressure:"))
	assert.Contains(t, reply, "&lt;long_oi&gt;")
}

func TestHelp_ListsEveryCommand(t *testing.T) {
	h := Help()
	for _, c := range Commands {
		assert.Contains(t, h, "/"+c.Name)
	}
}
