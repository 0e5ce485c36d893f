package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Calculations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trioracle_calculations_total",
			Help: "Total number of panel calculations",
		},
		[]string{"analysis", "outcome"}, // outcome: ok|invalid|error
	)

	CalculationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trioracle_calculation_duration_seconds",
			Help:    "Panel calculation duration in seconds, parsing and formatting included",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"analysis"},
	)

	ArbitrageFound = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trioracle_arbitrage_found_total",
			Help: "Number of arbitrage checks that found a guaranteed-profit book",
		},
	)

	BriefingRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trioracle_briefing_runs_total",
			Help: "Scheduled briefing runs",
		},
		[]string{"status"}, // status: sent|failed|empty
	)

	NotificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trioracle_notifications_total",
			Help: "Telegram messages sent",
		},
		[]string{"status"}, // status: success|error
	)
)

// Init registers all collectors with the default registry
func Init() {
	prometheus.MustRegister(Calculations)
	prometheus.MustRegister(CalculationDuration)
	prometheus.MustRegister(ArbitrageFound)
	prometheus.MustRegister(BriefingRuns)
	prometheus.MustRegister(NotificationsSent)
}

// ObserveCalculation records one calculation that started at start.
func ObserveCalculation(analysis, outcome string, start time.Time) {
	Calculations.WithLabelValues(analysis, outcome).Inc()
	CalculationDuration.WithLabelValues(analysis).Observe(time.Since(start).Seconds())
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
