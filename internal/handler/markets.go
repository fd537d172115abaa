package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketboard/internal/models"
)

// MarketSource produces the ranked public market array. *pipeline.Pipeline
// satisfies it; tests substitute stubs.
type MarketSource interface {
	Run(ctx context.Context) ([]models.MarketView, error)
}

type MarketHandler struct {
	Source MarketSource
	Logger *zap.Logger
}

func (h *MarketHandler) Register(r *gin.Engine) {
	r.GET("/api/markets", h.listMarkets)
}

// @Summary List ranked markets
// @Description Fetches live events from the upstream API, normalizes and filters them, and returns the ranked market array. Responses are never cacheable.
// @Tags markets
// @Produce json
// @Success 200 {array} models.MarketView
// @Failure 500 {object} map[string]string
// @Router /api/markets [get]
func (h *MarketHandler) listMarkets(c *gin.Context) {
	setNoCacheHeaders(c)

	if h.Source == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericFetchError})
		return
	}

	views, err := h.Source.Run(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("market pipeline failed", zap.Error(err))
		}
		// Internal detail never reaches the client.
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericFetchError})
		return
	}
	c.JSON(http.StatusOK, views)
}

const genericFetchError = "Failed to fetch market data"

// setNoCacheHeaders forbids caching at every layer (client, proxy, CDN);
// the data is live and every call must reflect current upstream state.
func setNoCacheHeaders(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0, s-maxage=0")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
}
