// Package di provides dependency injection configuration for the catalog exporter.
package di

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/catalog-export/internal/config"
	"github.com/listenupapp/catalog-export/internal/di/providers"
)

// NewContainer creates and configures the DI container with all providers.
// Services are built lazily on first invoke, so commands that never touch
// the cache never open it.
func NewContainer(flags config.Flags) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig(flags))
	do.Provide(injector, providers.ProvideLogger)

	// Catalog cache
	do.Provide(injector, providers.ProvideCatalog)

	// Export pipeline
	do.Provide(injector, providers.ProvideExporter)

	return injector
}
