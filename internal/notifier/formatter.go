package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"TriOracle/internal/model"
)

// money formats a price or amount with thousand separators and two decimals.
func money(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

// FormatArbitrage formats the arbitrage panel.
func FormatArbitrage(r *model.ArbitrageReport) string {
	res := r.Result
	var b strings.Builder

	b.WriteString("⚖️ <b>Arbitrage Engine</b>\n\n")
	if !res.OK() {
		b.WriteString(fmt.Sprintf("❌ %s\n", res.Error))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Bankroll: %s\n", money(res.Bankroll)))
	for i, o := range res.Odds {
		b.WriteString(fmt.Sprintf("  Outcome %d: odds %.2f → implied %.2f%%\n", i+1, o, res.ImpliedProbs[i]*100))
	}
	b.WriteString(fmt.Sprintf("Total implied: %.4f\n\n", res.TotalImplied))

	if !res.Found {
		b.WriteString("🔴 <b>NO ARBITRAGE</b>\n")
		if over := res.Overround(); over > 0 {
			b.WriteString(fmt.Sprintf("   Bookmaker margin: %.2f%%\n", over))
		}
		return b.String()
	}

	b.WriteString("🟢 <b>ARBITRAGE FOUND</b>\n")
	b.WriteString(fmt.Sprintf("   Market efficiency gap: %.2f%%\n", res.Efficiency()*100))
	b.WriteString(fmt.Sprintf("   Guaranteed profit: %s (%.2f%%)\n\n", money(res.Profit), res.ProfitPercent()))

	b.WriteString("💰 <b>Stakes:</b>\n")
	for i, s := range r.Rounded {
		b.WriteString(fmt.Sprintf("  Outcome %d: stake %s → payout %s (%s)\n",
			i+1, s.Stake.StringFixed(2), s.Payout.StringFixed(2), signed(s.Profit.StringFixed(2))))
	}
	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("  Placed: %s | worst case: %s\n",
		r.RoundedTotal.StringFixed(2), signed(r.WorstCaseProfit.StringFixed(2))))
	return b.String()
}

func signed(s string) string {
	if strings.HasPrefix(s, "-") {
		return s
	}
	return "+" + s
}

// FormatPressure formats the positioning panel.
func FormatPressure(r *model.PressureReading) string {
	var b strings.Builder
	b.WriteString("🧭 <b>Positioning Gauge</b>\n\n")
	b.WriteString(fmt.Sprintf("Long OI: %s | Short OI: %s\n", money(r.LongOI), money(r.ShortOI)))
	b.WriteString(fmt.Sprintf("Total OI: %s\n", money(r.TotalOI)))
	b.WriteString(fmt.Sprintf("Gauge: %+.3f → <b>%s</b>\n", r.Gauge, r.Band))
	switch r.Note {
	case model.CongestionNone:
	case model.CongestionAsymmetry:
		b.WriteString(fmt.Sprintf("⚠️ %s (%s bias)\n", r.Note, r.Bias))
	default:
		b.WriteString(fmt.Sprintf("🚨 %s\n", r.Note))
	}
	return b.String()
}

// FormatMarket formats the market structure panel.
func FormatMarket(m *model.MarketStructure) string {
	var b strings.Builder
	b.WriteString("🏛 <b>Market Structure</b>\n\n")
	b.WriteString(fmt.Sprintf("Price: %s | MA50: %s\n", money(m.Price), money(m.MA50)))
	b.WriteString(fmt.Sprintf("Trend: <b>%s</b>\n\n", m.TrendStatus))

	b.WriteString("📐 <b>Fibonacci:</b>\n")
	highlighted := make(map[string]bool, len(m.Highlighted))
	for _, l := range m.Highlighted {
		highlighted[l.Label] = true
	}
	writeLevels(&b, m.Levels, highlighted)
	b.WriteString(fmt.Sprintf("Closest: %s (%s away)\n\n", m.Closest.Label, money(m.ClosestDistance)))

	b.WriteString(fmt.Sprintf("Swing range: %s", money(m.Range)))
	if m.Compressed {
		b.WriteString(" 🔒 compressed")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Position in swing: %.0f%%\n", m.Position*100))
	return b.String()
}

func writeLevels(b *strings.Builder, levels model.FibonacciLevels, mark map[string]bool) {
	for _, l := range levels {
		prefix := "  "
		if mark[l.Label] {
			prefix = "👉"
		}
		b.WriteString(fmt.Sprintf("%s %-10s %s\n", prefix, l.Label, money(l.Price)))
	}
}

// FormatFibonacci formats the Fibonacci panel.
func FormatFibonacci(r *model.FibonacciReport) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🌀 <b>Fibonacci</b> | %s (%d min)\n\n", r.Timeframe, r.Minutes))
	b.WriteString(fmt.Sprintf("Swing: %s → %s | Price: %s\n", money(r.Low), money(r.High), money(r.Price)))
	b.WriteString(fmt.Sprintf("Horizon: %s\n\n", r.Horizon))

	near := make(map[string]bool)
	for _, p := range r.Proximity {
		if p.Proximity == model.ProximityNear {
			near[p.Level.Label] = true
		}
	}
	writeLevels(&b, r.Levels, near)
	b.WriteString(fmt.Sprintf("Closest: %s (%s away)\n", r.Closest.Label, money(r.ClosestDistance)))

	for _, p := range r.Proximity {
		if p.Proximity != model.ProximityNone {
			b.WriteString(fmt.Sprintf("  %s %s (%s)\n", p.Proximity, p.Level.Label, money(p.Distance)))
		}
	}

	bias := "BEARISH (below 50.0%)"
	if r.AboveMidpoint {
		bias = "BULLISH (above 50.0%)"
	}
	b.WriteString(fmt.Sprintf("\nBias: %s\n", bias))
	if r.ReversalZone {
		b.WriteString("🎯 Reversal zone: price at 38.2% / 61.8%\n")
	}
	return b.String()
}

// FormatTechnical formats the technical indicators panel.
func FormatTechnical(r *model.TechnicalReading) string {
	var b strings.Builder
	b.WriteString("📈 <b>Technical Indicators</b>\n\n")
	b.WriteString(fmt.Sprintf("RSI: %.1f → %s\n", r.RSI, r.Momentum))
	b.WriteString(fmt.Sprintf("DMI: +DI %.1f | -DI %.1f → %s\n", r.DMI.PDI, r.DMI.MDI, r.Trend))
	if r.Smoothed {
		b.WriteString(fmt.Sprintf("Wilder: RSI %.1f | +DI %.1f | -DI %.1f\n",
			r.SmoothedRSI, r.SmoothedDMI.PDI, r.SmoothedDMI.MDI))
	}
	b.WriteString(fmt.Sprintf("\nConfluence: <b>%s</b>\n", r.Confluence))
	return b.String()
}

// FormatVolume formats the volume panel.
func FormatVolume(r *model.VolumeReport) string {
	v := r.Volume
	var b strings.Builder
	b.WriteString("📊 <b>Volume</b>\n\n")
	b.WriteString(fmt.Sprintf("Current: %s | Average: %s\n", money(v.Current), money(v.Average)))
	b.WriteString(fmt.Sprintf("Ratio: %.2fx → %s | Trend: %s\n", v.Ratio, v.Status, v.Delta))

	w := r.VWAP
	side := "below"
	if w.AboveVWAP {
		side = "above"
	}
	b.WriteString(fmt.Sprintf("VWAP: %s | Price: %s (%s, %+.2f%%)\n", money(w.VWAP), money(w.Price), side, w.DiffPct))
	if r.Note != model.VolumeNoteNone {
		b.WriteString(fmt.Sprintf("\n🔔 %s\n", r.Note))
	}
	return b.String()
}

// FormatBriefing joins several panels under a dated header.
func FormatBriefing(at time.Time, panels []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔱 <b>TriOracle Briefing</b> | %s\n", at.Format("2006-01-02 15:04")))
	for _, p := range panels {
		b.WriteString("\n")
		b.WriteString(p)
	}
	return b.String()
}
