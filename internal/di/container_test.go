package di

import (
	"path/filepath"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/catalog-export/internal/config"
	"github.com/listenupapp/catalog-export/internal/di/providers"
	"github.com/listenupapp/catalog-export/internal/logger"
)

func testFlags(t *testing.T) config.Flags {
	t.Helper()
	dir := t.TempDir()
	for _, key := range []string{"ENV", "LOG_LEVEL", "CATALOG_CACHE_PATH", "OUTPUT_DIR", "OUTPUT_ARCHIVE", "EXPORT_PROFILE"} {
		t.Setenv(key, "")
	}
	return config.Flags{
		LogLevel:  "error",
		CachePath: filepath.Join(dir, "missing.db"),
		OutputDir: dir,
		EnvFile:   filepath.Join(dir, ".env"),
	}
}

func TestContainer_ResolvesConfigAndLogger(t *testing.T) {
	flags := testFlags(t)
	injector := NewContainer(flags)
	defer injector.Shutdown()

	cfg, err := do.Invoke[*config.Config](injector)
	require.NoError(t, err)
	assert.Equal(t, flags.CachePath, cfg.Catalog.CachePath)
	assert.Equal(t, "error", cfg.Logger.Level)

	log, err := do.Invoke[*logger.Logger](injector)
	require.NoError(t, err)
	assert.NotNil(t, log.Logger)
}

func TestContainer_MissingCache(t *testing.T) {
	injector := NewContainer(testFlags(t))
	defer injector.Shutdown()

	_, err := do.Invoke[*providers.CatalogHandle](injector)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog cache not found")
}

func TestContainer_InvalidConfig(t *testing.T) {
	flags := testFlags(t)
	flags.Env = "qa"
	injector := NewContainer(flags)
	defer injector.Shutdown()

	_, err := do.Invoke[*config.Config](injector)
	require.Error(t, err)
}
