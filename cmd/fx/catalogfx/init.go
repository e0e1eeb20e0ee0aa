package catalogfx

import (
	"go.uber.org/fx"

	"tripreco/internal/catalog"
	"tripreco/internal/shared"
)

var Module = fx.Provide(provideCatalog)

func provideCatalog(cfg shared.Config) *catalog.Catalog {
	return catalog.Generate(cfg.CatalogSeed)
}
