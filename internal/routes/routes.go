package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tripmind/tripmind/internal/app/domain/chatbackend"
	"github.com/tripmind/tripmind/internal/app/domain/geo"
	"github.com/tripmind/tripmind/internal/app/domain/intent"
	"github.com/tripmind/tripmind/internal/app/domain/knowledge"
	"github.com/tripmind/tripmind/internal/app/domain/maprender"
	"github.com/tripmind/tripmind/internal/app/domain/simulate"
	"github.com/tripmind/tripmind/internal/app/domain/tripparse"
	"github.com/tripmind/tripmind/internal/app/domain/trips"
	"github.com/tripmind/tripmind/internal/app/eventbus"
	"github.com/tripmind/tripmind/internal/app/session"
	"github.com/tripmind/tripmind/internal/pkg/config"
)

// AppHandlers groups every HTTP handler the router mounts.
type AppHandlers struct {
	Chat  *chatbackend.Handler
	Map   *maprender.Handler
	Trips *trips.Handler

	Renderer *maprender.Renderer
}

// Setup builds the domain graph and mounts all routes on the router.
func Setup(r *gin.Engine, cfg *config.Config, bus *eventbus.Bus, broadcaster *eventbus.Broadcaster, logger *zap.Logger) *AppHandlers {
	gazetteer := knowledge.NewDefaultGazetteer()
	cities := knowledge.NewCityDB()
	classifier := intent.NewClassifier(gazetteer)
	simulator := simulate.New(gazetteer, cities, logger)
	extractor := tripparse.NewExtractor(gazetteer, logger)
	projector := geo.NewProjector(geo.NewOffsetGeocoder())
	renderer := maprender.New(bus, logger)
	sessionStore := session.NewStore(cfg.SessionTTL)

	backend := pickBackend(cfg, logger)
	chatSvc := chatbackend.NewChatService(backend, classifier, simulator, extractor, projector, bus, logger)

	h := &AppHandlers{
		Chat:     chatbackend.NewHandler(chatSvc, sessionStore, logger),
		Map:      maprender.NewHandler(renderer, bus, logger),
		Trips:    trips.NewHandler(logger),
		Renderer: renderer,
	}

	api := r.Group("/api")
	{
		api.POST("/chat", h.Chat.HandleChat)
		api.POST("/trips/save", h.Trips.SaveTrip)
		api.GET("/trips/shared", h.Trips.GetShared)
		api.GET("/map/plan", h.Map.GetPlan)
		api.POST("/map/select", h.Map.SelectLocation)
		api.POST("/map/day", h.Map.SetActiveDay)
		api.POST("/map/retry", h.Map.Retry)
		api.GET("/events", broadcaster.ServeSSE)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return h
}

// pickBackend chooses the external completion provider: DeepSeek when
// its key is set, else Gemini, else none. No key is not an error; the
// simulator answers every turn then.
func pickBackend(cfg *config.Config, logger *zap.Logger) chatbackend.Backend {
	if ds := chatbackend.NewDeepSeekBackend(chatbackend.DeepSeekConfig{
		APIKey:  cfg.Backends.DeepSeek.APIKey,
		BaseURL: cfg.Backends.DeepSeek.BaseURL,
		Model:   cfg.Backends.DeepSeek.Model,
		Timeout: cfg.Backends.DeepSeek.Timeout,
	}, logger); ds != nil {
		logger.Info("chat backend: deepseek", zap.String("model", cfg.Backends.DeepSeek.Model))
		return ds
	}

	if cfg.Backends.Gemini.APIKey != "" {
		gb, err := chatbackend.NewGeminiBackend(context.Background(),
			cfg.Backends.Gemini.APIKey, cfg.Backends.Gemini.Model, logger)
		if err != nil {
			logger.Warn("gemini backend unavailable, running simulator only", zap.Error(err))
			return nil
		}
		if gb != nil {
			logger.Info("chat backend: gemini", zap.String("model", cfg.Backends.Gemini.Model))
			return gb
		}
	}

	logger.Info("no chat backend configured, running simulator only")
	return nil
}
