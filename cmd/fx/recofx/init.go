package recofx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tripreco/internal/catalog"
	"tripreco/internal/reco"
)

var Module = fx.Provide(provideTripService)

func provideTripService(cat *catalog.Catalog, logger zerolog.Logger) reco.TripServiceInterface {
	return reco.NewTripService(cat, logger)
}
