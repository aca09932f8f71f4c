// Package http_server builds the gin engine: middleware, static assets
// and route registration.
package http_server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/config"
	"hexachats_server/internal/handler"
	"hexachats_server/internal/infrastructure/logger"
	"hexachats_server/internal/infrastructure/middleware"
	"hexachats_server/internal/router"
)

// Init builds the engine with zap logging, panic recovery, CORS, the
// static avatar dir and all business routes.
func Init(handlers *handler.Handlers, checker middleware.AdminChecker) *gin.Engine {
	conf := config.GetConfig()
	if conf.MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))
	// engine.Use(middleware.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	if conf.StaticSrcConfig.StaticAvatarPath != "" {
		engine.Static("/static/avatars", conf.StaticSrcConfig.StaticAvatarPath)
	}

	router.RegisterRoutes(engine, handlers, checker)
	return engine
}
