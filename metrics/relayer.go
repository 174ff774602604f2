package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type RelayerMetrics struct {
	Registry                    *prometheus.Registry
	SuccessfulHeadersCounter    prometheus.Counter
	FailedHeadersCounter        prometheus.Counter
	SecondsSinceLastHeaderGauge prometheus.Gauge
	LocalBestHeightGauge        prometheus.Gauge
	RelayBestHeightGauge        prometheus.Gauge
	RelayerStateGauge           prometheus.Gauge
}

func NewRelayerMetrics() *RelayerMetrics {
	registry := prometheus.NewRegistry()
	registerer := promauto.With(registry)

	metrics := &RelayerMetrics{
		Registry: registry,
		SuccessfulHeadersCounter: registerer.NewCounter(prometheus.CounterOpts{
			Name: "relayer_submitted_headers_total",
			Help: "The total number of headers accepted by the BTC relay",
		}),
		FailedHeadersCounter: registerer.NewCounter(prometheus.CounterOpts{
			Name: "relayer_failed_headers_total",
			Help: "The total number of headers the BTC relay rejected",
		}),
		SecondsSinceLastHeaderGauge: registerer.NewGauge(prometheus.GaugeOpts{
			Name: "relayer_seconds_since_last_header",
			Help: "Seconds since the last successfully submitted header",
		}),
		LocalBestHeightGauge: registerer.NewGauge(prometheus.GaugeOpts{
			Name: "relayer_local_best_height",
			Help: "The best height of the local Bitcoin node",
		}),
		RelayBestHeightGauge: registerer.NewGauge(prometheus.GaugeOpts{
			Name: "relayer_relay_best_height",
			Help: "The best height of the remote BTC relay",
		}),
		RelayerStateGauge: registerer.NewGauge(prometheus.GaugeOpts{
			Name: "relayer_state",
			Help: "The relayer driver state (0 uninitialized, 1 catching up, 2 tracking tip)",
		}),
	}

	return metrics
}

// RecordMetrics starts the goroutine that updates time-related metrics
func (sm *RelayerMetrics) RecordMetrics() {
	go func() {
		for {
			time.Sleep(time.Second)
			sm.SecondsSinceLastHeaderGauge.Inc()
		}
	}()
}
