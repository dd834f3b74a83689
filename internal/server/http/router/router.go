package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/xXDatiXx/pimp-cleaner-25/internal/config"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/server/http/handlers"
	"github.com/xXDatiXx/pimp-cleaner-25/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.MaxMultipartMemory = 10 << 20

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	health := handlers.NewHealthHandler(facade)
	clients := handlers.NewClientHandler(facade)
	services := handlers.NewServiceHandler(facade)
	orders := handlers.NewOrderHandler(facade)
	racks := handlers.NewRackHandler(facade)
	stats := handlers.NewStatsHandler(facade)

	engine.GET("/healthz", health.Check)

	api := engine.Group("/api")

	api.GET("/clients", clients.List)
	api.POST("/clients", clients.Create)
	api.GET("/clients/:id", clients.Get)
	api.PUT("/clients/:id", clients.Update)
	api.DELETE("/clients/:id", clients.Delete)

	api.GET("/services", services.List)
	api.POST("/services", services.Create)
	api.PUT("/services/:id", services.Update)
	api.DELETE("/services/:id", services.Delete)

	api.GET("/orders", orders.List)
	api.POST("/orders", orders.Create)
	api.POST("/orders/status", orders.BulkChangeStatus)
	api.GET("/orders/:id", orders.Get)
	api.PUT("/orders/:id", orders.Update)
	api.DELETE("/orders/:id", orders.Delete)
	api.POST("/orders/:id/status", orders.ChangeStatus)
	api.GET("/orders/:id/history", orders.History)
	api.POST("/orders/:id/items/:item/photo", orders.UploadPhoto)
	api.GET("/orders/:id/items/:item/photo", orders.PhotoURL)

	api.GET("/racks", racks.List)
	api.GET("/racks/free", racks.Free)
	api.GET("/racks/:rack", racks.Get)
	api.PUT("/racks/:rack", racks.Update)

	api.GET("/stats", stats.Metrics)
	api.GET("/stats/history", stats.History)
	api.POST("/stats/snapshot", stats.Snapshot)

	return engine
}
