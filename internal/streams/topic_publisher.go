package streams

import (
	"context"
	"encoding/json"
	"time"

	"marketplace-analytics/internal/events"
	"marketplace-analytics/internal/shared/metrics"

	"github.com/segmentio/kafka-go"
)

// LogRecord is the payload shape on the logs topic, consumed by a separate
// log-shipping service.
type LogRecord struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// messageWriter is the slice of kafka.Writer the publisher depends on.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TopicPublisher is the produce side of the transport adapter, shared by
// the event hooks and the log shipper. One long-lived writer handle is
// reused across publishes; callers treat a publish as fire-and-forget but
// the send itself is synchronous.
//
//go:generate mockgen -source=topic_publisher.go -destination=./mocks/topic_publisher_mock.go -package=mocks
type TopicPublisher interface {
	PublishEvent(ctx context.Context, event *events.UserEvent) error
	PublishLog(ctx context.Context, record LogRecord) error
	Close() error
}

type kafkaTopicPublisher struct {
	writer      messageWriter
	eventsTopic string
	logsTopic   string
}

// NewTopicPublisher builds a publisher over a single shared kafka writer.
func NewTopicPublisher(brokers []string, eventsTopic, logsTopic string) TopicPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return newTopicPublisher(writer, eventsTopic, logsTopic)
}

func newTopicPublisher(writer messageWriter, eventsTopic, logsTopic string) TopicPublisher {
	return &kafkaTopicPublisher{
		writer:      writer,
		eventsTopic: eventsTopic,
		logsTopic:   logsTopic,
	}
}

// PublishEvent ships one behavioral event onto the events topic. The user
// ID keys the message so one user's events stay on one partition, which
// preserves arrival order for the consumer group.
func (p *kafkaTopicPublisher) PublishEvent(ctx context.Context, event *events.UserEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errInternalPublishFailed(p.eventsTopic, err)
	}

	message := kafka.Message{
		Topic: p.eventsTopic,
		Key:   []byte(event.UserID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		metricMessagePublishedTotal.WithLabelValues(p.eventsTopic, codePublishFailed).Inc()
		return errInternalPublishFailed(p.eventsTopic, err)
	}

	metricMessagePublishedTotal.WithLabelValues(p.eventsTopic, metrics.ValueNoError).Inc()
	return nil
}

// PublishLog ships one structured log record onto the logs topic.
func (p *kafkaTopicPublisher) PublishLog(ctx context.Context, record LogRecord) error {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return errInternalPublishFailed(p.logsTopic, err)
	}

	message := kafka.Message{
		Topic: p.logsTopic,
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		metricMessagePublishedTotal.WithLabelValues(p.logsTopic, codePublishFailed).Inc()
		return errInternalPublishFailed(p.logsTopic, err)
	}

	metricMessagePublishedTotal.WithLabelValues(p.logsTopic, metrics.ValueNoError).Inc()
	return nil
}

func (p *kafkaTopicPublisher) Close() error {
	return p.writer.Close()
}
