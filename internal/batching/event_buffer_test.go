package batching

import (
	"fmt"
	"sync"
	"testing"

	"marketplace-analytics/internal/events"
	"marketplace-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(userID string) *events.UserEvent {
	return &events.UserEvent{UserID: userID, Action: models.ActionProductView}
}

func TestEventBuffer_DrainReturnsEnqueueOrder(t *testing.T) {
	t.Parallel()

	buffer := NewEventBuffer()
	buffer.Enqueue(event("u1"))
	buffer.Enqueue(event("u2"))
	buffer.Enqueue(event("u3"))

	batch := buffer.Drain()
	require.Len(t, batch, 3)
	assert.Equal(t, "u1", batch[0].UserID)
	assert.Equal(t, "u2", batch[1].UserID)
	assert.Equal(t, "u3", batch[2].UserID)
}

func TestEventBuffer_DrainLeavesBufferEmpty(t *testing.T) {
	t.Parallel()

	buffer := NewEventBuffer()
	buffer.Enqueue(event("u1"))

	first := buffer.Drain()
	assert.Len(t, first, 1)
	assert.Equal(t, 0, buffer.Len())

	second := buffer.Drain()
	assert.Empty(t, second, "draining an empty buffer yields nothing")
}

func TestEventBuffer_EnqueueDuringDrainIsNotLost(t *testing.T) {
	t.Parallel()

	buffer := NewEventBuffer()
	buffer.Enqueue(event("u1"))

	batch := buffer.Drain()
	buffer.Enqueue(event("u2"))

	assert.Len(t, batch, 1)
	assert.Equal(t, 1, buffer.Len(), "events enqueued after the swap land in the next batch")
}

func TestEventBuffer_ConcurrentEnqueue(t *testing.T) {
	t.Parallel()

	buffer := NewEventBuffer()

	const producers = 8
	const perProducer = 200

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				buffer.Enqueue(event(fmt.Sprintf("u%d-%d", p, i)))
			}
		}(p)
	}
	wg.Wait()

	batch := buffer.Drain()
	assert.Len(t, batch, producers*perProducer, "no enqueue may be lost")
}
