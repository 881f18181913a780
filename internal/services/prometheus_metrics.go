package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ledgerOperations     *prometheus.CounterVec
	ledgerOperationTime  prometheus.Histogram
	depositAmount        prometheus.Histogram
	withdrawalAmount     prometheus.Histogram
	forwardingQueueDepth *prometheus.GaugeVec
	forwardingRetries    prometheus.Counter
	poolCalls            *prometheus.CounterVec
	poolCallDuration     prometheus.Histogram
	circuitBreakerState  *prometheus.GaugeVec
	totalValueLocked     prometheus.Gauge
	accountsCreated      prometheus.Counter
	authorizationDenied  *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		ledgerOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savings_ledger_operations_total",
				Help: "Total number of ledger operations by kind and status",
			},
			[]string{"operation", "status"},
		),
		ledgerOperationTime: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "savings_ledger_operation_duration_milliseconds",
				Help:    "Ledger operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		depositAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "savings_deposit_amount_usdc",
				Help:    "Deposit amount in USDC",
				Buckets: prometheus.ExponentialBuckets(0.01, 10, 8),
			},
		),
		withdrawalAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "savings_withdrawal_amount_usdc",
				Help:    "Withdrawal amount in USDC",
				Buckets: prometheus.ExponentialBuckets(0.01, 10, 8),
			},
		),
		forwardingQueueDepth: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pool_forwarding_queue_depth",
				Help: "Current depth of the pool forwarding queue",
			},
			[]string{"status"},
		),
		forwardingRetries: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "pool_forwarding_retry_attempts_total",
				Help: "Total number of pool forwarding retry attempts",
			},
		),
		poolCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pool_exchange_calls_total",
				Help: "Total number of exchange calls by operation and status",
			},
			[]string{"operation", "status"},
		),
		poolCallDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pool_exchange_call_duration_milliseconds",
				Help:    "Exchange call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		totalValueLocked: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "savings_total_value_locked_usdc",
				Help: "Sum of all ledger balances in USDC",
			},
		),
		accountsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "savings_accounts_created_total",
				Help: "Total number of savings accounts created",
			},
		),
		authorizationDenied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savings_authorization_denied_total",
				Help: "Total number of denied ledger operations",
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	status := tags["status"]

	switch name {
	case "ledger.operation":
		m.ledgerOperations.WithLabelValues(operation, status).Inc()
	case "ledger.account_created":
		m.accountsCreated.Inc()
	case "ledger.authorization_denied":
		m.authorizationDenied.WithLabelValues(operation).Inc()
	case "pool.call":
		m.poolCalls.WithLabelValues(operation, status).Inc()
	case "forwarding.enqueued":
		m.forwardingQueueDepth.WithLabelValues("pending").Inc()
	case "forwarding.retry":
		m.forwardingRetries.Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ledger.operation":
		m.ledgerOperationTime.Observe(float64(duration.Milliseconds()))
	case "pool.call":
		m.poolCallDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "ledger.total_value_locked":
		m.totalValueLocked.Set(value)
	case "ledger.deposit_amount":
		m.depositAmount.Observe(value)
	case "ledger.withdrawal_amount":
		m.withdrawalAmount.Observe(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	default:
		if status := tags["status"]; status != "" {
			m.forwardingQueueDepth.WithLabelValues(status).Set(value)
		}
	}
}
