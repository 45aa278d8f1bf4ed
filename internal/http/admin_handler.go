package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socionics-wiki/internal/domain"
	"socionics-wiki/internal/service"
)

type AdminHandler struct {
	logger  *zap.Logger
	scrapes *service.ScrapeService
}

func NewAdminHandler(logger *zap.Logger, scrapes *service.ScrapeService) *AdminHandler {
	return &AdminHandler{logger: logger, scrapes: scrapes}
}

// TriggerScrape maneja POST /admin/scrape.
func (h *AdminHandler) TriggerScrape(c *gin.Context) {
	runID, err := h.scrapes.Start(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	claims, _ := GetAuthClaims(c)
	h.logger.Info("scrape triggered", zap.String("run_id", runID), zap.String("subject", claims.Subject))
	c.JSON(http.StatusAccepted, gin.H{"run_id": runID, "status": domain.ScrapeStatusRunning})
}

// ListRuns maneja GET /admin/scrapes.
func (h *AdminHandler) ListRuns(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	runs, err := h.scrapes.ListRuns(c.Request.Context(), limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if runs == nil {
		runs = []domain.ScrapeRun{}
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// ListPages maneja GET /admin/scrapes/:id/pages.
func (h *AdminHandler) ListPages(c *gin.Context) {
	run, pages, err := h.scrapes.ListPages(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if pages == nil {
		pages = []domain.PageSnapshot{}
	}
	c.JSON(http.StatusOK, gin.H{"run": run, "pages": pages})
}

func (h *AdminHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScrapeUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scraping unavailable"})
	case errors.Is(err, service.ErrScrapeInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "scrape already running"})
	case errors.Is(err, service.ErrRunNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
	default:
		h.logger.Error("admin request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
