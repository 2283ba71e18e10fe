package maprender

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tripmind/tripmind/internal/app/eventbus"
	"github.com/tripmind/tripmind/internal/app/models"
)

// Handler exposes the render plan and the map interactions over HTTP.
type Handler struct {
	renderer *Renderer
	bus      *eventbus.Bus
	logger   *zap.Logger
}

// NewHandler builds the map handler.
func NewHandler(renderer *Renderer, bus *eventbus.Bus, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{renderer: renderer, bus: bus, logger: logger}
}

// GetPlan handles GET /api/map/plan.
func (h *Handler) GetPlan(c *gin.Context) {
	c.JSON(http.StatusOK, h.renderer.Plan())
}

// SelectLocation handles POST /api/map/select. Selecting a marker
// announces it on the bus; unknown names are a 404.
func (h *Handler) SelectLocation(c *gin.Context) {
	var req models.SelectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请提供要选择的景点名称"})
		return
	}

	loc, err := h.renderer.Select(req.Name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "未找到该景点"})
		return
	}
	c.JSON(http.StatusOK, loc)
}

// SetActiveDay handles POST /api/map/day. A null day clears the filter.
// The change goes through the bus so every follower sees it.
func (h *Handler) SetActiveDay(c *gin.Context) {
	var req models.ActiveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请提供有效的天数"})
		return
	}
	if req.Day != nil && *req.Day < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "天数必须从1开始"})
		return
	}

	h.bus.Publish(eventbus.TopicActiveDayChanged, req.Day)
	c.JSON(http.StatusOK, h.renderer.Plan())
}

// Retry handles POST /api/map/retry, rebuilding the plan after a client
// render failure. Past the attempt cap it returns 429.
func (h *Handler) Retry(c *gin.Context) {
	plan, err := h.renderer.Retry()
	if err != nil {
		h.logger.Warn("map retry budget exhausted", zap.Error(err))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "已达到重试上限，请刷新页面"})
		return
	}
	c.JSON(http.StatusOK, plan)
}
