package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketboard/internal/classifier"
)

type CategoryHandler struct{}

func (h *CategoryHandler) Register(r *gin.Engine) {
	r.GET("/api/categories", h.listCategories)
}

// @Summary List dashboard categories
// @Tags categories
// @Produce json
// @Success 200 {array} classifier.CategoryInfo
// @Router /api/categories [get]
func (h *CategoryHandler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, classifier.Catalog())
}
