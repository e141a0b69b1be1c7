package batching

import (
	"marketplace-analytics/internal/shared/metrics"
)

var (
	metricBufferDepth = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatching,
			Name:      "buffer_depth",
		},
	)

	metricBatchDrainedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatching,
			Name:      "batch_drained_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricEventsDrainedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatching,
			Name:      "events_drained_total",
		},
	)
)
