package eventbus

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/tripmind/tripmind/internal/observability/metrics"
)

// Topic names one event stream on the bus.
type Topic string

// Topics used across the chat and map panels. The names mirror the
// "panel:event" convention the browser shell listens for.
const (
	TopicLocationsUpdated Topic = "map:locations_updated"
	TopicLocationSelected Topic = "map:location_selected"
	TopicActiveDayChanged Topic = "map:active_day_changed"

	TopicMessageSent      Topic = "chat:message_sent"
	TopicResponseReceived Topic = "chat:response_received"
	TopicTripGenerated    Topic = "chat:trip_generated"

	TopicAppError   Topic = "app:error"
	TopicAppLoading Topic = "app:loading"
	TopicAppReady   Topic = "app:ready"
)

// Handler receives one published payload.
type Handler func(payload any)

// Mirror receives a copy of every publish, regardless of local
// subscribers. The SSE broadcaster implements it so observers without a
// bus reference (a separately mounted map widget) can still listen.
type Mirror interface {
	Broadcast(topic Topic, payload any)
}

type subscription struct {
	handler Handler
	removed bool
}

// Bus is an in-process publish/subscribe registry. Delivery is
// synchronous, at-most-once per registered handler per publish, in
// registration order. A handler that panics does not stop delivery to
// the handlers after it. Construct one at application start and inject
// it; there is no package-level instance.
type Bus struct {
	mu     sync.Mutex
	subs   map[Topic][]*subscription
	mirror Mirror
	logger *zap.Logger
}

// New creates a bus. mirror may be nil.
func New(logger *zap.Logger, mirror Mirror) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		subs:   make(map[Topic][]*subscription),
		mirror: mirror,
		logger: logger,
	}
}

// Subscribe registers handler for topic and returns an unsubscribe
// function. Unsubscribing removes exactly that registration; calling it
// twice is a no-op.
func (b *Bus) Subscribe(topic Topic, handler Handler) func() {
	sub := &subscription{handler: handler}

	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], sub)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub.removed {
			return
		}
		sub.removed = true
		list := b.subs[topic]
		for i, s := range list {
			if s == sub {
				b.subs[topic] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers payload to every subscriber of topic, then mirrors
// the event to the broadcaster. Publishing with no subscribers is a
// no-op apart from the mirror.
func (b *Bus) Publish(topic Topic, payload any) {
	start := time.Now()

	b.mu.Lock()
	snapshot := make([]*subscription, len(b.subs[topic]))
	copy(snapshot, b.subs[topic])
	b.mu.Unlock()

	for _, sub := range snapshot {
		b.deliver(topic, sub, payload)
	}

	if b.mirror != nil {
		b.mirror.Broadcast(topic, payload)
	}

	m := metrics.Get()
	topicAttr := metric.WithAttributes(attribute.String("topic", string(topic)))
	m.EventsPublishedTotal.Add(context.Background(), 1, topicAttr)
	m.EventPublishDuration.Record(context.Background(), time.Since(start).Seconds(), topicAttr)
}

func (b *Bus) deliver(topic Topic, sub *subscription, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				zap.String("topic", string(topic)),
				zap.Any("panic", r),
			)
		}
	}()
	sub.handler(payload)
}

// Clear drops every subscriber of topic.
func (b *Bus) Clear(topic Topic) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, topic)
}

// ClearAll drops all subscribers. Used on teardown.
func (b *Bus) ClearAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = make(map[Topic][]*subscription)
}
