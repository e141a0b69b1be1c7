package streams

import (
	"marketplace-analytics/internal/shared/metrics"
)

var (
	metricMessageConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "message_consumed_total",
		},
		[]string{"topic", metrics.FieldErrorCode},
	)

	metricMessagePublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "message_published_total",
		},
		[]string{"topic", metrics.FieldErrorCode},
	)
)
