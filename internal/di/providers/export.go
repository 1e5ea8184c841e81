package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/catalog-export/internal/config"
	"github.com/listenupapp/catalog-export/internal/export"
	"github.com/listenupapp/catalog-export/internal/logger"
)

// ProvideExporter provides the CSV exporter over the catalog cache.
func ProvideExporter(i do.Injector) (*export.Exporter, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	handle, err := do.Invoke[*CatalogHandle](i)
	if err != nil {
		return nil, err
	}

	return export.New(handle.Source, cfg.Profile, log.Logger), nil
}
