package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"socionics-wiki/internal/metrics"
	"socionics-wiki/internal/service"
)

// RouterDeps agrupa handlers y middlewares compartidos.
type RouterDeps struct {
	Catalog  *CatalogHandler
	Relation *RelationHandler
	Search   *SearchHandler
	Auth     *AuthHandler
	Admin    *AdminHandler

	JWT     *service.JWTService
	Limiter service.RateLimiter
	Metrics *metrics.Metrics
}

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(logger *zap.Logger, deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, metricas y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), metricsMiddleware(deps.Metrics), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/overview", deps.Catalog.Overview)
	r.GET("/types", deps.Catalog.ListTypes)
	r.GET("/types/:code", deps.Catalog.GetType)
	r.GET("/glossary", deps.Catalog.ListGlossary)
	r.GET("/glossary/:slug", deps.Catalog.GetTerm)
	r.GET("/relations", deps.Catalog.ListRelations)
	r.GET("/relations/matrix", deps.Relation.Matrix)

	limited := r.Group("", rateLimitMiddleware(deps.Limiter, deps.Metrics))
	limited.GET("/compare", deps.Relation.Compare)
	limited.GET("/search", deps.Search.Search)

	r.POST("/auth/token", deps.Auth.IssueToken)

	admin := r.Group("/admin", JWTAuthMiddleware(deps.JWT, service.RoleAdmin))
	admin.POST("/scrape", deps.Admin.TriggerScrape)
	admin.GET("/scrapes", deps.Admin.ListRuns)
	admin.GET("/scrapes/:id/pages", deps.Admin.ListPages)

	return r
}
