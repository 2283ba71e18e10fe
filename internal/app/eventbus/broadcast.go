package eventbus

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tripmind/tripmind/internal/observability/metrics"
)

// Event is one mirrored publish as seen by an SSE observer.
type Event struct {
	Topic   Topic `json:"topic"`
	Payload any   `json:"payload"`
}

// Broadcaster fans every bus publish out to connected SSE clients. It
// is the platform-level side of the bus's dual delivery: widgets that
// hold no bus reference subscribe here over HTTP instead.
type Broadcaster struct {
	mu      sync.Mutex
	clients map[uuid.UUID]chan Event
	logger  *zap.Logger
}

const clientBuffer = 32

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster(logger *zap.Logger) *Broadcaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Broadcaster{
		clients: make(map[uuid.UUID]chan Event),
		logger:  logger,
	}
}

// Broadcast implements Mirror. A client that cannot keep up has the
// event dropped rather than blocking the publisher.
func (br *Broadcaster) Broadcast(topic Topic, payload any) {
	br.mu.Lock()
	defer br.mu.Unlock()

	for id, ch := range br.clients {
		select {
		case ch <- Event{Topic: topic, Payload: payload}:
		default:
			br.logger.Warn("dropping event for slow SSE client",
				zap.String("topic", string(topic)),
				zap.String("client", id.String()),
			)
		}
	}
}

func (br *Broadcaster) attach() (uuid.UUID, chan Event) {
	id := uuid.New()
	ch := make(chan Event, clientBuffer)

	br.mu.Lock()
	br.clients[id] = ch
	connected := len(br.clients)
	br.mu.Unlock()

	metrics.Get().SSEClientsGauge.Record(context.Background(), int64(connected))
	return id, ch
}

func (br *Broadcaster) detach(id uuid.UUID) {
	br.mu.Lock()
	if ch, ok := br.clients[id]; ok {
		delete(br.clients, id)
		close(ch)
	}
	connected := len(br.clients)
	br.mu.Unlock()

	metrics.Get().SSEClientsGauge.Record(context.Background(), int64(connected))
}

// ServeSSE is the Gin handler for GET /api/events. It streams every
// mirrored event to the client until the connection closes.
func (br *Broadcaster) ServeSSE(c *gin.Context) {
	id, ch := br.attach()
	defer br.detach(id)

	br.logger.Info("SSE observer connected", zap.String("client", id.String()))

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			data, err := json.Marshal(ev.Payload)
			if err != nil {
				br.logger.Error("failed to encode event payload",
					zap.String("topic", string(ev.Topic)),
					zap.Error(err),
				)
				return true
			}
			c.SSEvent(string(ev.Topic), string(data))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})

	br.logger.Info("SSE observer disconnected", zap.String("client", id.String()))
}
