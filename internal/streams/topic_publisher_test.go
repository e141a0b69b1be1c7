package streams

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"marketplace-analytics/internal/events"
	"marketplace-analytics/internal/models"
	"marketplace-analytics/internal/shared/svcerrors"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter records written messages, optionally failing every write.
type fakeWriter struct {
	mu       sync.Mutex
	written  []kafka.Message
	writeErr error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.written = append(f.written, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestPublishEvent_KeyedByUserID(t *testing.T) {
	t.Parallel()

	writer := &fakeWriter{}
	publisher := newTopicPublisher(writer, "users-events", "logs")

	event := &events.UserEvent{
		UserID:    "u1",
		ProductID: "p1",
		Action:    models.ActionAddToCart,
		Timestamp: time.Date(2026, 8, 30, 14, 2, 11, 0, time.UTC),
	}
	require.NoError(t, publisher.PublishEvent(context.Background(), event))

	require.Len(t, writer.written, 1)
	message := writer.written[0]
	assert.Equal(t, "users-events", message.Topic)
	assert.Equal(t, []byte("u1"), message.Key, "per-user partition keying")

	var decoded events.UserEvent
	require.NoError(t, json.Unmarshal(message.Value, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestPublishLog_DefaultsTimestamp(t *testing.T) {
	t.Parallel()

	writer := &fakeWriter{}
	publisher := newTopicPublisher(writer, "users-events", "logs")

	record := LogRecord{Type: "info", Message: "consumer started", Source: "marketplace-analytics"}
	require.NoError(t, publisher.PublishLog(context.Background(), record))

	require.Len(t, writer.written, 1)
	message := writer.written[0]
	assert.Equal(t, "logs", message.Topic)

	var decoded LogRecord
	require.NoError(t, json.Unmarshal(message.Value, &decoded))
	assert.Equal(t, "info", decoded.Type)
	assert.Equal(t, "consumer started", decoded.Message)
	assert.Equal(t, "marketplace-analytics", decoded.Source)
	assert.False(t, decoded.Timestamp.IsZero())
}

func TestPublishEvent_WriteFailure(t *testing.T) {
	t.Parallel()

	writer := &fakeWriter{writeErr: errors.New("broker unreachable")}
	publisher := newTopicPublisher(writer, "users-events", "logs")

	err := publisher.PublishEvent(context.Background(), &events.UserEvent{UserID: "u1", Action: models.ActionPurchase})
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "STR_9001", svcErr.Code)
}

func TestTopicPublisher_CloseClosesWriter(t *testing.T) {
	t.Parallel()

	writer := &fakeWriter{}
	publisher := newTopicPublisher(writer, "users-events", "logs")

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}
