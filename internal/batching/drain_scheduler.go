package batching

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"marketplace-analytics/internal/events"
	"marketplace-analytics/internal/shared/loggers"
	"marketplace-analytics/internal/shared/metrics"
	"marketplace-analytics/internal/shared/svcerrors"
	"marketplace-analytics/internal/shared/ulid"
)

// DefaultDrainInterval matches the reference cadence of the pipeline.
const DefaultDrainInterval = 3 * time.Second

// BatchProcessor consumes one drained batch sequentially. Implementations
// contain per-event failures themselves; a batch hand-off never errors.
//
//go:generate mockgen -source=drain_scheduler.go -destination=./mocks/drain_scheduler_mock.go -package=mocks
type BatchProcessor interface {
	ProcessBatch(ctx context.Context, batch []*events.UserEvent)
}

// DrainScheduler drains the buffer on a fixed interval and hands each batch
// to the processor. A single goroutine owns both the ticker and the
// processing, so a tick can never start a drain while the previous one is
// still running; per-key read-modify-write ordering across drains follows
// from that.
type DrainScheduler struct {
	buffer    *EventBuffer
	processor BatchProcessor
	interval  time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewDrainScheduler(buffer *EventBuffer, processor BatchProcessor, interval time.Duration, logger loggers.Logger) *DrainScheduler {
	if interval <= 0 {
		interval = DefaultDrainInterval
	}
	return &DrainScheduler{
		buffer:    buffer,
		processor: processor,
		interval:  interval,
		stopCh:    make(chan struct{}),
		logger:    logger,
	}
}

// Start launches the drain loop.
func (s *DrainScheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.run(ctx)
	}()
}

// Stop drains whatever is still buffered and waits for the loop to exit.
// Safe to call more than once.
func (s *DrainScheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *DrainScheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.finalDrain(ctx)
			return
		case <-s.stopCh:
			s.finalDrain(ctx)
			return
		case <-ticker.C:
			s.drainOnce(ctx)
		}
	}
}

// finalDrain flushes buffered events during shutdown. The parent context
// may already be cancelled, so the values are carried over without its
// cancellation to let in-flight persistence finish.
func (s *DrainScheduler) finalDrain(ctx context.Context) {
	s.drainOnce(context.WithoutCancel(ctx))
}

func (s *DrainScheduler) drainOnce(ctx context.Context) {
	batch := s.buffer.Drain()
	if len(batch) == 0 {
		// No empty-batch writes.
		return
	}

	batchID := ulid.NewULID()
	ctx = s.logger.With().
		Str(loggers.FieldBatchID, batchID).
		Logger().WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("drain panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricBatchDrainedTotal.WithLabelValues(svcErr.Code).Inc()
		}
	}()

	loggers.Ctx(ctx).Debug().
		Int(loggers.FieldEventCount, len(batch)).
		Msg("draining event batch")

	s.processor.ProcessBatch(ctx, batch)

	metricBatchDrainedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricEventsDrainedTotal.Add(float64(len(batch)))
}
