package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socionics-wiki/internal/service"
)

type SearchHandler struct {
	search *service.SearchService
}

func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search maneja GET /search?q=&limit=.
func (h *SearchHandler) Search(c *gin.Context) {
	var req struct {
		Query string `form:"q" binding:"required"`
		Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	results := h.search.Search(req.Query, req.Limit)
	if results == nil {
		results = []service.SearchResult{}
	}
	c.JSON(http.StatusOK, gin.H{"query": req.Query, "results": results})
}
