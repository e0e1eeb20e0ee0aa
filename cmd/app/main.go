package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tripreco/cmd/fx/catalogfx"
	"tripreco/cmd/fx/controllersfx"
	"tripreco/cmd/fx/queryfx"
	"tripreco/cmd/fx/recofx"
	"tripreco/cmd/fx/sessionfx"
	"tripreco/internal/api/controllers"
	"tripreco/internal/shared"
	"tripreco/pkg/middleware"
	"tripreco/pkg/observability"
	"tripreco/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(shared.Load),
		fx.Provide(ProvideLogger),
		catalogfx.Module,
		sessionfx.Module,
		queryfx.Module,
		recofx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLogger(cfg shared.Config) zerolog.Logger {
	return observability.NewLogger(cfg.AppEnv)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg shared.Config, logger zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			observability.Serve(cfg.MetricsAddr)
			go func() {
				logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting HTTP server")
				if err := engine.Run(cfg.HTTPAddr); err != nil {
					logger.Fatal().Err(err).Msg("HTTP server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg shared.Config,
	sessionController *controllers.SessionController,
	searchController *controllers.SearchController,
	recoController *controllers.RecoController,
	transportController *controllers.TransportController,
	tripController *controllers.TripController,
	catalogController *controllers.CatalogController) *gin.Engine {

	if cfg.AppEnv != "dev" && cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, sessionController, searchController, recoController, transportController, tripController, catalogController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessionController *controllers.SessionController,
	searchController *controllers.SearchController,
	recoController *controllers.RecoController,
	transportController *controllers.TransportController,
	tripController *controllers.TripController,
	catalogController *controllers.CatalogController) {

	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})

	r.POST("/sessions", sessionController.CreateSessionHandler)

	catalogGroup := r.Group("/catalog")
	catalogGroup.GET("/destinations", catalogController.ListDestinationsHandler)
	catalogGroup.GET("/destinations/:id/pois", catalogController.ListPOIsHandler)

	transportGroup := r.Group("/transport")
	transportGroup.GET("/flights", transportController.FlightsHandler)
	transportGroup.GET("/trains", transportController.TrainsHandler)

	authed := r.Group("/", middleware.SessionAuthMiddleware())
	authed.DELETE("/sessions", sessionController.EndSessionHandler)
	authed.POST("/search/parse", searchController.ParseSearchHandler)
	authed.GET("/recommendations/destinations", recoController.DestinationsHandler)
	authed.GET("/recommendations/hotels", recoController.HotelsHandler)
	authed.POST("/trips/bundle", tripController.BuildTripBundleHandler)
}
