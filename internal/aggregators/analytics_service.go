package aggregators

import (
	"context"

	"marketplace-analytics/internal/events"
	"marketplace-analytics/internal/shared/loggers"
	"marketplace-analytics/internal/shared/metrics"
	"marketplace-analytics/internal/shared/svcerrors"
	"marketplace-analytics/internal/stores"
)

// AnalyticsService folds drained batches into the persisted aggregates.
// It is the BatchProcessor behind the drain scheduler: one event at a time,
// user aggregate first, then the product aggregate when the event carries a
// product ID, each as its own read-modify-write.
//
//go:generate mockgen -source=analytics_service.go -destination=./mocks/analytics_service_mock.go -package=mocks
type AnalyticsService interface {
	ProcessBatch(ctx context.Context, batch []*events.UserEvent)
	ProcessEvent(ctx context.Context, event *events.UserEvent) *svcerrors.ServiceError
}

type analyticsService struct {
	engine       AggregateEngine
	userStore    stores.UserAnalyticsStore
	productStore stores.ProductAnalyticsStore
}

func NewAnalyticsService(engine AggregateEngine, userStore stores.UserAnalyticsStore, productStore stores.ProductAnalyticsStore) AnalyticsService {
	return &analyticsService{
		engine:       engine,
		userStore:    userStore,
		productStore: productStore,
	}
}

// ProcessBatch applies the batch sequentially in arrival order. A failure
// on one event is logged and counted; the remaining events still run, so a
// single bad record cannot stall the pipeline.
func (s *analyticsService) ProcessBatch(ctx context.Context, batch []*events.UserEvent) {
	for _, event := range batch {
		svcErr := s.ProcessEvent(ctx, event)
		if svcErr != nil {
			loggers.Ctx(ctx).Error().
				Err(svcErr).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Str(loggers.FieldUserID, event.UserID).
				Str(loggers.FieldProductID, event.ProductID).
				Str(loggers.FieldAction, event.Action.String()).
				Msg("event dropped")
			metricEventProcessedTotal.WithLabelValues(event.Action.String(), svcErr.Code).Inc()
			continue
		}
		metricEventProcessedTotal.WithLabelValues(event.Action.String(), metrics.ValueNoError).Inc()
	}
}

// ProcessEvent runs the two read-modify-write operations for one event.
func (s *analyticsService) ProcessEvent(ctx context.Context, event *events.UserEvent) *svcerrors.ServiceError {
	if svcErr := s.applyToUser(ctx, event); svcErr != nil {
		return svcErr
	}

	if event.ProductID == "" {
		return nil
	}
	return s.applyToProduct(ctx, event)
}

func (s *analyticsService) applyToUser(ctx context.Context, event *events.UserEvent) *svcerrors.ServiceError {
	user, err := s.userStore.Get(ctx, event.UserID)
	if err != nil {
		return errInternalUserStoreFailed(err)
	}
	isNew := user.IsNew()

	if err := s.engine.ApplyToUser(user, event); err != nil {
		return errInternalEngineApplyFailed(err)
	}

	if err := s.userStore.Upsert(ctx, user); err != nil {
		return errInternalUserStoreFailed(err)
	}

	if isNew {
		metricUserAggregateCreatedTotal.Inc()
	}
	return nil
}

func (s *analyticsService) applyToProduct(ctx context.Context, event *events.UserEvent) *svcerrors.ServiceError {
	product, err := s.productStore.Get(ctx, event.ProductID)
	if err != nil {
		return errInternalProductStoreFailed(err)
	}
	isNew := product.IsNew()

	if err := s.engine.ApplyToProduct(product, event); err != nil {
		return errInternalEngineApplyFailed(err)
	}

	if err := s.productStore.Upsert(ctx, product); err != nil {
		return errInternalProductStoreFailed(err)
	}

	if isNew {
		metricProductAggregateCreatedTotal.Inc()
	}
	return nil
}
