package trips

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tripmind/tripmind/internal/app/models"
	"github.com/tripmind/tripmind/internal/observability/metrics"
)

// Handler exposes trip saving and share decoding over HTTP.
type Handler struct {
	logger *zap.Logger
}

// NewHandler builds the trips handler.
func NewHandler(logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{logger: logger}
}

// SaveTrip handles POST /api/trips/save. Saving is stateless: the
// response carries a share link embedding the whole trip.
func (h *Handler) SaveTrip(c *gin.Context) {
	var req models.SaveTripRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Trip == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请提供有效的行程数据"})
		return
	}

	origin := c.GetHeader("Origin")
	if origin == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		origin = scheme + "://" + c.Request.Host
	}

	shareURL, err := ShareLink(origin, req.Trip)
	if err != nil {
		h.logger.Warn("rejecting trip save", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "请提供有效的行程数据", "success": false})
		return
	}

	metrics.Get().TripSharesTotal.Add(c.Request.Context(), 1)
	c.JSON(http.StatusOK, models.SaveTripResponse{
		Success:  true,
		Message:  "行程已成功保存",
		ShareURL: shareURL,
	})
}

// GetShared handles GET /api/trips/shared, resolving a share link's
// data parameter back into a trip for the share page.
func (h *Handler) GetShared(c *gin.Context) {
	data := c.Query("data")
	if data == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少行程数据"})
		return
	}

	trip, err := DecodeShared(data)
	if err != nil {
		h.logger.Debug("invalid share payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "行程数据无效"})
		return
	}
	c.JSON(http.StatusOK, trip)
}
