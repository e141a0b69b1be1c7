package aggregators

import (
	"marketplace-analytics/internal/shared/metrics"
)

var (
	metricEventProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "event_processed_total",
		},
		[]string{"action", metrics.FieldErrorCode},
	)

	metricUserAggregateCreatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "user_aggregate_created_total",
		},
	)

	metricProductAggregateCreatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "product_aggregate_created_total",
		},
	)

	// metricCounterWentNegativeTotal counts decrements that drove a product
	// counter below zero. The engine does not clamp, so this is the only
	// place the lost-increment edge case becomes visible.
	metricCounterWentNegativeTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "counter_went_negative_total",
		},
		[]string{"counter"},
	)
)
