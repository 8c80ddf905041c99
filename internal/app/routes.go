package app

import (
	"context"
	"net/http"
	"time"

	"taskbill/internal/cache"
	"taskbill/internal/config"
	dom "taskbill/internal/domain"
	"taskbill/internal/handlers"
	"taskbill/internal/platform/logger"
	"taskbill/internal/repo"
	"taskbill/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Store is the database handle the routes need: queries for the
// repositories and Ping for /health. *pgxpool.Pool satisfies it.
type Store interface {
	repo.DB
	Ping(ctx context.Context) error
}

// Setup registers all routes on the given engine. rdb may be nil.
func Setup(r *gin.Engine, cfg config.Config, log *logger.Logger, db Store, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg, db))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	api := r.Group("/api/v1")

	var todoCache *cache.EntityCache[dom.Todo]
	var invoiceCache *cache.EntityCache[dom.Invoice]
	if rdb != nil {
		ttl := cfg.Redis.DefaultTTL.Duration()
		todoCache = cache.NewEntityCache[dom.Todo](rdb, "todo", ttl)
		invoiceCache = cache.NewEntityCache[dom.Invoice](rdb, "invoice", ttl)
	}

	todoSvc := service.NewTodoService(repo.NewPGTodoRepo(db), todoCache, log)
	registerTodoRoutes(api, handlers.NewTodoHandler(todoSvc, log))

	invoiceSvc := service.NewInvoiceService(repo.NewPGInvoiceRepo(db), invoiceCache, log)
	registerInvoiceRoutes(api, handlers.NewInvoiceHandler(invoiceSvc, log))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Todo & Invoice API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config, db Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "env": cfg.App.Env})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "swagger doc unavailable"})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTodoRoutes(api *gin.RouterGroup, h *handlers.TodoHandler) {
	api.POST("/todos", h.Create)
	api.GET("/todos", h.List)
	api.GET("/todos/:id", h.GetByID)
	api.PUT("/todos/:id", h.Update)
	api.DELETE("/todos/:id", h.Delete)
}

func registerInvoiceRoutes(api *gin.RouterGroup, h *handlers.InvoiceHandler) {
	api.POST("/invoices", h.Create)
	api.GET("/invoices", h.List)
	api.GET("/invoices/:id", h.GetByID)
	api.PUT("/invoices/:id", h.Update)
	api.DELETE("/invoices/:id", h.Delete)
}
