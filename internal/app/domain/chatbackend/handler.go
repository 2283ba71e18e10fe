package chatbackend

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tripmind/tripmind/internal/app/models"
	"github.com/tripmind/tripmind/internal/app/session"
	"github.com/tripmind/tripmind/internal/observability/metrics"
)

// Handler exposes the chat turn over HTTP.
type Handler struct {
	svc      *ChatService
	sessions *session.Store
	logger   *zap.Logger
}

// NewHandler builds the chat handler.
func NewHandler(svc *ChatService, sessions *session.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, sessions: sessions, logger: logger}
}

// HandleChat handles POST /api/chat. The request must carry a non-empty
// string message; anything else is a 400. Backend failures never reach
// this layer, so a 500 here means the pipeline itself failed.
func (h *Handler) HandleChat(c *gin.Context) {
	start := time.Now()
	ctx := c.Request.Context()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请提供有效的消息内容"})
		return
	}

	convID := h.sessions.ConversationID(c)
	if !h.sessions.BeginTurn(convID) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "请等待上一条消息处理完成"})
		return
	}
	defer h.sessions.EndTurn(convID)

	history := h.sessions.History(convID)

	resp, err := h.svc.HandleMessage(ctx, req.Message, history)

	m := metrics.Get()
	m.ChatRequestsTotal.Add(ctx, 1)
	m.ChatTurnDuration.Record(ctx, time.Since(start).Seconds())

	if err != nil {
		h.logger.Error("chat turn failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "处理您的请求时发生错误，请稍后再试",
			"details": err.Error(),
		})
		return
	}

	now := time.Now()
	h.sessions.Append(convID,
		models.Message{Role: models.RoleUser, Content: req.Message, Timestamp: now},
		models.Message{Role: models.RoleAssistant, Content: resp.Content, Timestamp: now, TripData: resp.TripData},
	)

	c.JSON(http.StatusOK, resp)
}
