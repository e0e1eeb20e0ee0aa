package controllersfx

import (
	"go.uber.org/fx"

	"tripreco/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewSearchController),
	fx.Provide(controllers.NewRecoController),
	fx.Provide(controllers.NewTransportController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewCatalogController))
