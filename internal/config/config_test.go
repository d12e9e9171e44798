package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, MemoryPath, cfg.Database.Path)
	assert.True(t, cfg.Database.InMemory())
	assert.True(t, cfg.Seed)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CRM_DATABASE__PATH", "/tmp/crm.db")
	t.Setenv("CRM_DATABASE__MAX_OPEN_CONNS", "3")
	t.Setenv("CRM_LOG__LEVEL", "debug")
	t.Setenv("CRM_SEED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/crm.db", cfg.Database.Path)
	assert.False(t, cfg.Database.InMemory())
	assert.Equal(t, 3, cfg.Database.MaxOpenConns)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Seed)
}

func TestLoad_PostgresRequiresHost(t *testing.T) {
	t.Setenv("CRM_DATABASE__DRIVER", "postgres")
	t.Setenv("CRM_DATABASE__HOST", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("CRM_DATABASE__DRIVER", "postgres")
	t.Setenv("CRM_DATABASE__HOST", "db.internal")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.False(t, cfg.Database.InMemory())
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := Default()
	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())
}
