package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socionics-wiki/internal/dataset"
	"socionics-wiki/internal/domain"
	"socionics-wiki/internal/service"
)

// CatalogHandler expone tipos, glosario, parejas duales y la vista general.
type CatalogHandler struct {
	logger    *zap.Logger
	catalog   *dataset.Dataset
	relations *service.RelationService
}

func NewCatalogHandler(logger *zap.Logger, catalog *dataset.Dataset, relations *service.RelationService) *CatalogHandler {
	return &CatalogHandler{
		logger:    logger,
		catalog:   catalog,
		relations: relations,
	}
}

// Overview maneja GET /overview.
func (h *CatalogHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"overview": h.catalog.Overview()})
}

// ListTypes maneja GET /types con filtros opcionales quadra, temperament y element.
func (h *CatalogHandler) ListTypes(c *gin.Context) {
	var filter dataset.TypeFilter
	var err error

	if v := strings.TrimSpace(c.Query("quadra")); v != "" {
		if filter.Quadra, err = domain.ParseQuadra(v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quadra"})
			return
		}
	}
	if v := strings.TrimSpace(c.Query("temperament")); v != "" {
		if filter.Temperament, err = domain.ParseTemperament(v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid temperament"})
			return
		}
	}
	if v := strings.TrimSpace(c.Query("element")); v != "" {
		if filter.Element, err = domain.ParseElement(v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid element"})
			return
		}
	}

	types := h.catalog.FilterTypes(filter)
	if types == nil {
		types = []domain.TypeRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"types": types, "count": len(types)})
}

// GetType maneja GET /types/:code.
func (h *CatalogHandler) GetType(c *gin.Context) {
	code := normalizeCode(c.Param("code"))
	t, err := h.catalog.Type(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "type not found"})
		return
	}

	groups, err := h.relations.RelationsOf(code)
	if err != nil {
		h.logger.Error("relations of type failed", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not classify relations"})
		return
	}

	resp := gin.H{"type": t, "relations": groups}
	if dual, ok := h.catalog.Duals().Partner(code); ok {
		resp["dual"] = dual
	}
	c.JSON(http.StatusOK, resp)
}

// ListGlossary maneja GET /glossary.
func (h *CatalogHandler) ListGlossary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"terms": h.catalog.Glossary()})
}

// GetTerm maneja GET /glossary/:slug.
func (h *CatalogHandler) GetTerm(c *gin.Context) {
	term, err := h.catalog.Term(strings.ToLower(strings.TrimSpace(c.Param("slug"))))
	if err != nil {
		if errors.Is(err, dataset.ErrUnknownTerm) {
			c.JSON(http.StatusNotFound, gin.H{"error": "term not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load term"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"term": term})
}

// ListRelations maneja GET /relations.
func (h *CatalogHandler) ListRelations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"relations": h.catalog.Relations()})
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
