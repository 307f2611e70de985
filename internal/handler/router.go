package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logdemo/loghub/internal/config"
	"logdemo/loghub/internal/handler/middleware"
)

// SetupRouter builds the backend service routes.
func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	logHandler *LogHandler,
	ioHandler *IOHandler,
) *gin.Engine {
	r := newEngine(cfg, logger)

	r.GET("/health", Health)
	r.GET("/logs", logHandler.List)

	io := r.Group("/io")
	{
		io.POST("/start", ioHandler.Start)
		io.POST("/write", ioHandler.Write)
		io.GET("/read", ioHandler.Read)
	}

	return r
}

// SetupProxyRouter builds the browser-facing proxy routes.
func SetupProxyRouter(
	cfg *config.Config,
	logger *zap.Logger,
	proxyHandler *ProxyHandler,
) *gin.Engine {
	r := newEngine(cfg, logger)

	r.GET("/", Index)
	r.GET("/health", Health)

	api := r.Group("/api")
	{
		api.GET("/logs", proxyHandler.Logs)
		api.POST("/io/start", proxyHandler.StartIO)
		api.POST("/io/write", proxyHandler.WriteIO)
		api.GET("/io/read", proxyHandler.ReadIO)
	}

	return r
}

func newEngine(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.CORS))

	return r
}
