package streams

import (
	"context"
	"errors"
	"sync"
	"time"

	"marketplace-analytics/internal/batching"
	"marketplace-analytics/internal/events"
	"marketplace-analytics/internal/shared/loggers"
	"marketplace-analytics/internal/shared/metrics"
	"marketplace-analytics/internal/shared/svcerrors"

	"github.com/segmentio/kafka-go"
)

// messageFetcher is the slice of kafka.Reader the consumer depends on.
type messageFetcher interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewEventsReader builds the kafka reader for the users-events topic.
// Subscription starts from the latest offset: this pipeline is best-effort
// analytics, and replaying history on a fresh consumer group would
// double-count every counter.
func NewEventsReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		GroupID:     groupID,
		MinBytes:    1,
		MaxBytes:    10e6, // 10MB
		MaxWait:     1 * time.Second,
		StartOffset: kafka.LastOffset,
	})
}

// EventConsumer pulls messages sequentially from the broker, parses each
// payload, and feeds valid events to the batching buffer. One consumer
// goroutine per process; parallelism across processes comes from the
// consumer group.
//
// A message that fails to parse is still committed. There is no dead-letter
// path and no return channel to the emitter, so a poison message is dropped
// and surfaced through the dropped counter instead of looping forever.
type EventConsumer struct {
	reader messageFetcher
	topic  string
	buffer *batching.EventBuffer

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewEventConsumer(reader messageFetcher, topic string, buffer *batching.EventBuffer, logger loggers.Logger) *EventConsumer {
	return &EventConsumer{
		reader: reader,
		topic:  topic,
		buffer: buffer,
		stopCh: make(chan struct{}),
		logger: logger,
	}
}

// Start launches the consume loop.
func (c *EventConsumer) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		c.run(ctx)
	}()
}

// Stop closes the reader, which unblocks a pending fetch, and waits for the
// loop to exit. The consumer group offset was committed per message, so a
// restart resumes cleanly.
func (c *EventConsumer) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
		_ = c.reader.Close()
	})
	c.wg.Wait()
}

func (c *EventConsumer) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopCh:
			return
		default:
		}

		message, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if c.stopping(ctx) {
				return
			}
			c.logger.Error().
				Err(err).
				Str(loggers.FieldTopic, c.topic).
				Msg("fetch failed")
			metricMessageConsumedTotal.WithLabelValues(c.topic, codeFetchFailed).Inc()
			time.Sleep(1 * time.Second)
			continue
		}

		c.handleMessage(ctx, message)
	}
}

func (c *EventConsumer) stopping(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	select {
	case <-c.stopCh:
		return true
	default:
		return false
	}
}

func (c *EventConsumer) handleMessage(ctx context.Context, message kafka.Message) {
	event, err := events.ParseUserEvent(message.Value, time.Now().UTC())
	if err != nil {
		// Deliberate silent drop toward the emitter, observable here.
		errorCode := errorCodeOf(err)
		c.logger.Warn().
			Err(err).
			Str(loggers.FieldTopic, c.topic).
			Str(loggers.FieldErrorCode, errorCode).
			Msg("message dropped")
		metricMessageConsumedTotal.WithLabelValues(c.topic, errorCode).Inc()
	} else {
		c.buffer.Enqueue(event)
		metricMessageConsumedTotal.WithLabelValues(c.topic, metrics.ValueNoError).Inc()
	}

	// Commit in both branches so poison messages are not redelivered.
	if err := c.reader.CommitMessages(ctx, message); err != nil && !errors.Is(err, context.Canceled) {
		c.logger.Error().
			Err(err).
			Str(loggers.FieldTopic, c.topic).
			Msg("offset commit failed")
	}
}

func errorCodeOf(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return svcerrors.NewInternalErrorUndefined(err).Code
}
