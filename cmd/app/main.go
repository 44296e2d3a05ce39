package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"globetrek/cmd/fx/controllers_fx"
	"globetrek/cmd/fx/country_fx"
	"globetrek/cmd/fx/db_fx"
	"globetrek/cmd/fx/enrichment_fx"
	"globetrek/cmd/fx/explorer_fx"
	"globetrek/cmd/fx/itinerary_fx"
	"globetrek/cmd/fx/ledger_fx"
	"globetrek/cmd/fx/passport_fx"
	"globetrek/cmd/fx/redis_fx"
	"globetrek/internal/api/controllers"
	"globetrek/internal/config"
	"globetrek/pkg/logger"
	"globetrek/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(provideLogger),

		db_fx.Module,
		redis_fx.Module,
		country_fx.Module,
		enrichment_fx.Module,
		itinerary_fx.Module,
		ledger_fx.Module,
		explorer_fx.Module,
		passport_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger(cfg *config.Config) logger.Logger {
	return logger.New(cfg.LogLevel, cfg.PrettyLog)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infof("Starting HTTP server on :%s", cfg.ListenPort)
				if err := engine.Run(":" + cfg.ListenPort); err != nil {
					log.Errorf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return log.Sync()
		},
	})
}

func ProvideRouter(
	explorerController *controllers.ExplorerController,
	passportController *controllers.PassportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, explorerController, passportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	explorerController *controllers.ExplorerController,
	passportController *controllers.PassportController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	journeys := r.Group("/journeys")
	journeys.POST("/start", explorerController.StartJourney)
	journeys.GET("/current", explorerController.GetCurrentJourney)
	journeys.POST("/save", explorerController.SaveTrip)

	passport := r.Group("/passport")
	passport.GET("", passportController.GetSummary)
	passport.GET("/stamps", passportController.GetStamps)
	passport.GET("/book", passportController.GetBook)
	passport.POST("/book/toggle", passportController.ToggleBook)
	passport.POST("/book/next", passportController.NextPage)
	passport.POST("/book/previous", passportController.PreviousPage)
}
