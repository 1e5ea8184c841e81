// Package providers contains dependency injection providers for the catalog exporter.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/catalog-export/internal/config"
	"github.com/listenupapp/catalog-export/internal/logger"
)

// ProvideConfig returns a provider that loads the configuration from flags.
func ProvideConfig(flags config.Flags) do.Provider[*config.Config] {
	return func(do.Injector) (*config.Config, error) {
		return config.Load(flags)
	}
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Debug("Configuration loaded",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"cache_path", cfg.Catalog.CachePath,
		"output_dir", cfg.Output.Dir,
		"archive", cfg.Output.Archive,
		"tables", len(cfg.Profile.Tables),
	)

	return log, nil
}
