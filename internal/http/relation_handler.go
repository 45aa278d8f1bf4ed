package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socionics-wiki/internal/service"
)

type RelationHandler struct {
	logger    *zap.Logger
	relations *service.RelationService
}

func NewRelationHandler(logger *zap.Logger, relations *service.RelationService) *RelationHandler {
	return &RelationHandler{logger: logger, relations: relations}
}

// Compare maneja GET /compare?a=&b=.
func (h *RelationHandler) Compare(c *gin.Context) {
	a := normalizeCode(c.Query("a"))
	b := normalizeCode(c.Query("b"))
	if a == "" || b == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a and b are required"})
		return
	}

	cmp, err := h.relations.Compare(c.Request.Context(), a, b)
	if err != nil {
		if errors.Is(err, service.ErrUnknownType) {
			c.JSON(http.StatusNotFound, gin.H{"error": "type not found"})
			return
		}
		h.logger.Error("compare failed", zap.String("a", a), zap.String("b", b), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compare types"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"a": cmp.A, "b": cmp.B, "relation": cmp.Relation})
}

// Matrix maneja GET /relations/matrix.
func (h *RelationHandler) Matrix(c *gin.Context) {
	c.JSON(http.StatusOK, h.relations.Matrix())
}
