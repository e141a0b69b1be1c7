package batching

import (
	"sync"

	"marketplace-analytics/internal/events"
)

// EventBuffer accumulates incoming events between drains, decoupling the
// consumer's ingestion rate from persistence. It is the only contended
// in-process resource: the transport goroutine appends while the drain
// scheduler swaps the whole slice out.
type EventBuffer struct {
	mu      sync.Mutex
	pending []*events.UserEvent
}

func NewEventBuffer() *EventBuffer {
	return &EventBuffer{}
}

// Enqueue appends an event to the buffer. The buffer is unbounded; the
// drain interval bounds how much can accumulate in practice.
func (b *EventBuffer) Enqueue(event *events.UserEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending = append(b.pending, event)
	metricBufferDepth.Set(float64(len(b.pending)))
}

// Drain atomically swaps out the buffered events and returns them in
// enqueue order, leaving the buffer empty for new arrivals while the
// returned batch is processed.
func (b *EventBuffer) Drain() []*events.UserEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	batch := b.pending
	b.pending = nil
	metricBufferDepth.Set(0)
	return batch
}

func (b *EventBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}
