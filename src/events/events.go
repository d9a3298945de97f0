package events

import (
	"context"
	"sync"
	"time"

	"preferred-observer/src/interfaces"
	"preferred-observer/src/logger"
	"preferred-observer/src/metrics"
	"preferred-observer/src/models"

	"github.com/google/uuid"
)

// New builds an event with a fresh id and the current timestamp.
func New(eventType, ticker string, payload interface{}) models.MEvent {
	return models.MEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Ticker:    ticker,
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	}
}

// -----------------------------------------------------------------------------

type namedPublisher struct {
	name string
	pub  interfaces.IEventPublisher
}

// Fanout forwards every event to all registered sinks. Sink failures are
// logged and never returned.
type Fanout struct {
	sinks  []namedPublisher
	Logger *logger.Logger
	mu     sync.RWMutex
}

func NewFanout(log *logger.Logger) *Fanout {
	return &Fanout{Logger: log}
}

// Add registers a sink under name for logging and metrics.
func (f *Fanout) Add(name string, pub interfaces.IEventPublisher) {
	if pub == nil {
		return
	}
	f.mu.Lock()
	f.sinks = append(f.sinks, namedPublisher{name: name, pub: pub})
	f.mu.Unlock()
}

func (f *Fanout) Publish(ctx context.Context, event models.MEvent) error {
	f.mu.RLock()
	sinks := append([]namedPublisher(nil), f.sinks...)
	f.mu.RUnlock()

	for _, s := range sinks {
		err := s.pub.Publish(ctx, event)
		metrics.EventsPublished.WithLabelValues(s.name, metrics.Outcome(err)).Inc()
		if err != nil {
			f.Logger.Warning("Failed to publish %s to %s: %v", event.Type, s.name, err)
		}
	}
	return nil
}

// -----------------------------------------------------------------------------

// Nop discards events.
type Nop struct{}

func (Nop) Publish(context.Context, models.MEvent) error { return nil }
