// Package command turns chat and CLI command lines into formatted panels.
package command

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"

	"TriOracle/internal/analysis"
	"TriOracle/internal/metrics"
	"TriOracle/internal/notifier"
	"TriOracle/internal/parse"
	"TriOracle/pkg/logger"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong number of arguments")
)

// Command is a single chat command.
type Command struct {
	Name     string // without the leading slash
	Usage    string
	Summary  string
	Analysis string // metrics label
	run      func(r *Router, args []string) (string, outcome, error)
}

type outcome string

const (
	outcomeOK      outcome = "ok"
	outcomeInvalid outcome = "invalid"
	outcomeError   outcome = "error"
)

// Commands lists every command in help order.
var Commands = []Command{
	{Name: "arb", Usage: "/arb <odds,odds[,odds]> [bankroll]", Summary: "arbitrage check over 2 or 3 decimal odds", Analysis: "arbitrage", run: runArbitrage},
	{Name: "pressure", Usage: "/pressure <long_oi> <short_oi>", Summary: "long/short positioning gauge", Analysis: "positioning", run: runPressure},
	{Name: "market", Usage: "/market <price> <ma50> <swing_high> <swing_low>", Summary: "trend, Fibonacci alignment and swing range", Analysis: "market", run: runMarket},
	{Name: "fib", Usage: "/fib <high> <low> <price> [timeframe]", Summary: "Fibonacci levels and proximity (1m 5m 15m 30m 1h 4h 1d 1w)", Analysis: "fibonacci", run: runFibonacci},
	{Name: "ta", Usage: "/ta <highs> <lows> <closes> <prices>", Summary: "RSI, DMI and confluence over comma separated series", Analysis: "technical", run: runTechnical},
	{Name: "volume", Usage: "/volume <current> <history> <prices> <volumes> [price]", Summary: "volume ratio, trend and VWAP", Analysis: "volume", run: runVolume},
}

// Router evaluates command lines against an analysis engine.
type Router struct {
	engine          *analysis.Engine
	defaultBankroll float64
	log             *logger.Logger
}

// NewRouter creates a Router. defaultBankroll is used by /arb when no bankroll is given.
func NewRouter(engine *analysis.Engine, defaultBankroll float64, log *logger.Logger) *Router {
	return &Router{
		engine:          engine,
		defaultBankroll: defaultBankroll,
		log:             log.With("component", "command"),
	}
}

// Handle evaluates a chat message and always returns a reply, errors included.
// Text that is not a command yields an empty reply.
func (r *Router) Handle(ctx context.Context, text string) string {
	out, err := r.Evaluate(ctx, text)
	switch {
	case err == nil:
		return out
	case errors.Is(err, ErrUnknownCommand):
		return Help()
	default:
		return "❌ " + html.EscapeString(err.Error())
	}
}

// Evaluate runs one command line such as "/fib 110000 109000 109550 4h".
func (r *Router) Evaluate(ctx context.Context, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil
	}
	name := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	if name == "help" || name == "start" {
		return Help(), nil
	}

	cmd, ok := lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: /%s", ErrUnknownCommand, name)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	requestID := uuid.NewString()
	log := r.log.With("request_id", requestID, "command", cmd.Name)
	start := time.Now()

	out, oc, err := cmd.run(r, fields[1:])
	metrics.ObserveCalculation(cmd.Analysis, string(oc), start)
	if err != nil {
		log.Infow("command rejected", "outcome", oc, "error", err)
		return "", fmt.Errorf("/%s: %w\nusage: %s", cmd.Name, err, cmd.Usage)
	}
	log.Debugw("command evaluated", "outcome", oc, "duration", time.Since(start))
	return out, nil
}

func lookup(name string) (Command, bool) {
	for _, c := range Commands {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

// Help lists the available commands.
func Help() string {
	var b strings.Builder
	b.WriteString("🔱 <b>TriOracle</b>\n\nAvailable commands:\n")
	for _, c := range Commands {
		b.WriteString(fmt.Sprintf("• <code>%s</code>\n  %s\n", html.EscapeString(c.Usage), c.Summary))
	}
	b.WriteString("\nSeries are comma separated, e.g. <code>110000,110100,110200</code>")
	return b.String()
}

func argCount(args []string, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		return fmt.Errorf("%w: got %d", ErrUsage, len(args))
	}
	return nil
}

func runArbitrage(r *Router, args []string) (string, outcome, error) {
	if err := argCount(args, 1, 2); err != nil {
		return "", outcomeInvalid, err
	}
	odds, err := parse.Floats(args[0])
	if err != nil {
		return "", outcomeInvalid, fmt.Errorf("odds: %w", err)
	}
	bankroll := r.defaultBankroll
	if len(args) == 2 {
		if bankroll, err = parse.Float(args[1]); err != nil {
			return "", outcomeInvalid, fmt.Errorf("bankroll: %w", err)
		}
	}

	report := r.engine.Arbitrage(odds, bankroll)
	oc := outcomeOK
	if !report.Result.OK() {
		oc = outcomeInvalid
	} else if report.Result.Found {
		metrics.ArbitrageFound.Inc()
	}
	return notifier.FormatArbitrage(report), oc, nil
}

func runPressure(r *Router, args []string) (string, outcome, error) {
	if err := argCount(args, 2, 2); err != nil {
		return "", outcomeInvalid, err
	}
	long, err := parse.NonNegative(args[0])
	if err != nil {
		return "", outcomeInvalid, fmt.Errorf("long oi: %w", err)
	}
	short, err := parse.NonNegative(args[1])
	if err != nil {
		return "", outcomeInvalid, fmt.Errorf("short oi: %w", err)
	}
	return notifier.FormatPressure(r.engine.Positioning(long, short)), outcomeOK, nil
}

func runMarket(r *Router, args []string) (string, outcome, error) {
	if err := argCount(args, 4, 4); err != nil {
		return "", outcomeInvalid, err
	}
	v, err := floats(args, "price", "ma50", "swing high", "swing low")
	if err != nil {
		return "", outcomeInvalid, err
	}
	return notifier.FormatMarket(r.engine.Market(v[0], v[1], v[2], v[3])), outcomeOK, nil
}

func runFibonacci(r *Router, args []string) (string, outcome, error) {
	if err := argCount(args, 3, 4); err != nil {
		return "", outcomeInvalid, err
	}
	v, err := floats(args[:3], "high", "low", "price")
	if err != nil {
		return "", outcomeInvalid, err
	}
	timeframe := ""
	if len(args) == 4 {
		timeframe = strings.ToLower(args[3])
	}
	return notifier.FormatFibonacci(r.engine.Fibonacci(v[0], v[1], v[2], timeframe)), outcomeOK, nil
}

func runTechnical(r *Router, args []string) (string, outcome, error) {
	if err := argCount(args, 4, 4); err != nil {
		return "", outcomeInvalid, err
	}
	s, err := series(args, "highs", "lows", "closes", "prices")
	if err != nil {
		return "", outcomeInvalid, err
	}
	reading, err := r.engine.Technical(s[0], s[1], s[2], s[3])
	if err != nil {
		return "", outcomeInvalid, err
	}
	return notifier.FormatTechnical(reading), outcomeOK, nil
}

func runVolume(r *Router, args []string) (string, outcome, error) {
	if err := argCount(args, 4, 5); err != nil {
		return "", outcomeInvalid, err
	}
	current, err := parse.NonNegative(args[0])
	if err != nil {
		return "", outcomeInvalid, fmt.Errorf("current volume: %w", err)
	}
	s, err := series(args[1:4], "history", "prices", "volumes")
	if err != nil {
		return "", outcomeInvalid, err
	}
	prices := s[1]
	// without an explicit price the last traded price is used
	price := prices[len(prices)-1]
	if len(args) == 5 {
		if price, err = parse.Float(args[4]); err != nil {
			return "", outcomeInvalid, fmt.Errorf("price: %w", err)
		}
	}
	return notifier.FormatVolume(r.engine.Volume(current, s[0], prices, s[2], price)), outcomeOK, nil
}

func floats(args []string, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		v, err := parse.Float(args[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[i] = v
	}
	return out, nil
}

func series(args []string, names ...string) ([][]float64, error) {
	out := make([][]float64, len(names))
	for i, name := range names {
		v, err := parse.Floats(args[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[i] = v
	}
	return out, nil
}
