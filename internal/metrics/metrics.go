// Package metrics provides the centralized Prometheus metrics registry for
// the analysis engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	SimulationRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "courtside_edge",
		Name:      "simulation_runs_total",
		Help:      "Total number of Monte Carlo runs completed",
	})
	SimulationTrialsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "courtside_edge",
		Name:      "simulation_trials_total",
		Help:      "Total number of individual game trials simulated",
	})
	SimulationFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "courtside_edge",
		Name:      "simulation_failures_total",
		Help:      "Total number of aborted Monte Carlo runs",
	})
	BetDecisionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courtside_edge",
		Name:      "bet_decisions_total",
		Help:      "Total betting decisions by recommendation label",
	}, []string{"decision"})
	BacktestRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "courtside_edge",
		Name:      "backtest_runs_total",
		Help:      "Total number of backtest runs started",
	})
	BacktestBetsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "courtside_edge",
		Name:      "backtest_bets_total",
		Help:      "Total number of simulated bets placed during backtests",
	})
	DatasourceRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "courtside_edge",
		Name:      "datasource_requests_total",
		Help:      "Total historical stats provider requests by result",
	}, []string{"result"})
)

// Gauge metrics
var (
	BacktestROI = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "courtside_edge",
		Name:      "backtest_roi",
		Help:      "Return on investment of the most recent backtest run",
	})
	BacktestHitRate = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "courtside_edge",
		Name:      "backtest_hit_rate",
		Help:      "Hit rate of the most recent backtest run",
	})
	ActiveSimulations = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "courtside_edge",
		Name:      "active_simulations",
		Help:      "Number of Monte Carlo runs currently executing",
	})
)

// Histogram metrics
var (
	SimulationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "courtside_edge",
		Name:      "simulation_duration_seconds",
		Help:      "Duration of Monte Carlo runs in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
	})
	BacktestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "courtside_edge",
		Name:      "backtest_duration_seconds",
		Help:      "Duration of backtest runs in seconds",
		Buckets:   []float64{1, 5, 10, 30, 60, 300, 600, 1800},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(SimulationRunsTotal)
		registry.MustRegister(SimulationTrialsTotal)
		registry.MustRegister(SimulationFailuresTotal)
		registry.MustRegister(BetDecisionsTotal)
		registry.MustRegister(BacktestRunsTotal)
		registry.MustRegister(BacktestBetsTotal)
		registry.MustRegister(DatasourceRequestsTotal)

		registry.MustRegister(BacktestROI)
		registry.MustRegister(BacktestHitRate)
		registry.MustRegister(ActiveSimulations)

		registry.MustRegister(SimulationDuration)
		registry.MustRegister(BacktestDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordSimulationRun records one completed Monte Carlo run.
func RecordSimulationRun(trials int, durationSeconds float64) {
	SimulationRunsTotal.Inc()
	SimulationTrialsTotal.Add(float64(trials))
	SimulationDuration.Observe(durationSeconds)
}

// RecordSimulationFailure records an aborted run.
func RecordSimulationFailure() {
	SimulationFailuresTotal.Inc()
}

// RecordBetDecision records a betting recommendation.
func RecordBetDecision(decision string) {
	BetDecisionsTotal.WithLabelValues(decision).Inc()
}

// RecordBacktestRun records the headline results of a backtest run.
func RecordBacktestRun(roi, hitRate, durationSeconds float64, betsPlaced int) {
	BacktestRunsTotal.Inc()
	BacktestBetsTotal.Add(float64(betsPlaced))
	BacktestROI.Set(roi)
	BacktestHitRate.Set(hitRate)
	BacktestDuration.Observe(durationSeconds)
}

// RecordDatasourceRequest records one provider request outcome.
func RecordDatasourceRequest(result string) {
	DatasourceRequestsTotal.WithLabelValues(result).Inc()
}
