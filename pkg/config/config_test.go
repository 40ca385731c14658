package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-pro/pkg/config"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "mysql")

	cfg, err := config.Load()
	require.Error(t, err, "driver no soportado")
	assert.Nil(t, cfg)

	t.Setenv("DB_DRIVER", "sqlite")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, "inventory.db", cfg.DB.Path)
	assert.Equal(t, "admin", cfg.Admin.DefaultPassword)
	assert.False(t, cfg.DB.StrictAudit)
	assert.Equal(t, "file:inventory.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(0)", cfg.DB.ConnectionString())
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "inv")
	t.Setenv("DB_PASSWORD", "p@ss")
	t.Setenv("DB_NAME", "stock")
	t.Setenv("DB_STRICT_AUDIT", "true")
	t.Setenv("HTTP_PORT", "no-es-numero")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.DB.StrictAudit)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "postgres://inv:p%40ss@db:6543/stock?sslmode=disable", cfg.DB.ConnectionString())

	t.Setenv("DATABASE_URL", "postgres://u:p@h/x")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h/x", cfg.DB.ConnectionString())
}
