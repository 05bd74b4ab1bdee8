package app

import (
	"chirper/internal/cache"
	"chirper/internal/config"
	"chirper/internal/handlers"
	"chirper/internal/repo"
	"chirper/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	accountRepo := repo.NewPGAccountRepo(db)
	accountSvc := service.NewAccountService(accountRepo)
	accountHandler := handlers.NewAccountHandler(accountSvc)
	registerAccountRoutes(api, accountHandler)

	messageRepo := repo.NewPGMessageRepo(db)
	messageCache := cache.NewMessageCache(rdb, cfg.Redis.DefaultTTL.Duration())
	messageSvc := service.NewMessageService(messageRepo, accountRepo, messageCache)
	messageHandler := handlers.NewMessageHandler(messageSvc)
	registerMessageRoutes(api, messageHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Chirper API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAccountRoutes(api *gin.RouterGroup, h *handlers.AccountHandler) {
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
}

func registerMessageRoutes(api *gin.RouterGroup, h *handlers.MessageHandler) {
	api.POST("/messages", h.Create)
	api.GET("/messages", h.List)
	api.GET("/messages/:id", h.GetByID)
	api.PATCH("/messages/:id", h.Update)
	api.DELETE("/messages/:id", h.Delete)
	api.GET("/accounts/:id/messages", h.ListByAccount)
}
