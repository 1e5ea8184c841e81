package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/catalog-export/internal/catalog/sqlite"
	"github.com/listenupapp/catalog-export/internal/config"
	"github.com/listenupapp/catalog-export/internal/logger"
)

// CatalogHandle wraps the cache source with shutdown capability.
type CatalogHandle struct {
	*sqlite.Source
}

// Shutdown implements do.Shutdownable.
func (h *CatalogHandle) Shutdown() error {
	return h.Close()
}

// ProvideCatalog opens the catalog cache read-only.
func ProvideCatalog(i do.Injector) (*CatalogHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	source, err := sqlite.Open(cfg.Catalog.CachePath, log.Logger,
		sqlite.WithTextNormalization(cfg.Profile.NormalizeText))
	if err != nil {
		return nil, err
	}

	return &CatalogHandle{Source: source}, nil
}
