package chatbackend

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tripmind/tripmind/internal/app/domain/geo"
	"github.com/tripmind/tripmind/internal/app/domain/intent"
	"github.com/tripmind/tripmind/internal/app/domain/simulate"
	"github.com/tripmind/tripmind/internal/app/domain/tripparse"
	"github.com/tripmind/tripmind/internal/app/eventbus"
	"github.com/tripmind/tripmind/internal/app/models"
	"github.com/tripmind/tripmind/internal/observability/metrics"
)

// ChatService runs one chat turn end to end: classify, answer via the
// external backend or the simulator, recover itinerary structure, and
// announce the results on the event bus. A backend failure is never
// surfaced to the caller; the simulator answers instead.
type ChatService struct {
	backend    Backend // nil means simulator only
	classifier *intent.Classifier
	simulator  *simulate.Simulator
	extractor  *tripparse.Extractor
	projector  *geo.Projector
	bus        *eventbus.Bus
	logger     *zap.Logger
}

// NewChatService wires the turn pipeline. backend may be nil.
func NewChatService(
	backend Backend,
	classifier *intent.Classifier,
	simulator *simulate.Simulator,
	extractor *tripparse.Extractor,
	projector *geo.Projector,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		backend:    backend,
		classifier: classifier,
		simulator:  simulator,
		extractor:  extractor,
		projector:  projector,
		bus:        bus,
		logger:     logger,
	}
}

// HandleMessage answers one user message given the prior conversation.
func (s *ChatService) HandleMessage(ctx context.Context, message string, history []models.Message) (*models.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, models.ErrInvalidInput
	}

	s.bus.Publish(eventbus.TopicMessageSent, map[string]any{"message": message})
	s.bus.Publish(eventbus.TopicAppLoading, true)
	defer s.bus.Publish(eventbus.TopicAppLoading, false)

	resp := s.answer(ctx, message, history)

	if resp.TripData != nil {
		s.bus.Publish(eventbus.TopicTripGenerated, resp.TripData)
		if points := s.projector.Project(resp.TripData); len(points) > 0 {
			s.bus.Publish(eventbus.TopicLocationsUpdated, points)
		}
	}

	s.bus.Publish(eventbus.TopicResponseReceived, map[string]any{
		"content": resp.Content,
		"source":  resp.Source,
	})
	return resp, nil
}

// answer picks the reply producer for the turn. The backend path and the
// simulator path both end in the same response shape.
func (s *ChatService) answer(ctx context.Context, message string, history []models.Message) *models.ChatResponse {
	if s.backend != nil {
		content, err := s.backend.Complete(ctx, message, history)
		if err == nil {
			return s.fromBackendReply(ctx, content, message)
		}
		metrics.Get().BackendFallbacksTotal.Add(ctx, 1)
		s.logger.Warn("chat backend unavailable, answering with simulator",
			zap.String("backend", s.backend.Name()),
			zap.Error(err),
		)
	}

	it := s.classifier.Classify(message)
	reply := s.simulator.Respond(it, message)
	if reply.Trip != nil {
		metrics.Get().TripExtractionsTotal.Add(ctx, 1)
	}
	return &models.ChatResponse{
		Content:  reply.Content,
		TripData: reply.Trip,
		Source:   models.SourceSimulated,
	}
}

func (s *ChatService) fromBackendReply(ctx context.Context, content, message string) *models.ChatResponse {
	trip := s.extractor.Extract(content, message)
	if trip == nil {
		metrics.Get().ParseMissesTotal.Add(ctx, 1)
		s.logger.Debug("backend reply carried no extractable itinerary")
	} else {
		metrics.Get().TripExtractionsTotal.Add(ctx, 1)
	}
	return &models.ChatResponse{
		Content:  content,
		TripData: trip,
		Source:   models.SourceExternal,
	}
}
