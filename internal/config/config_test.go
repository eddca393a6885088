package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, uint16(8080), cfg.HTTP.Port)
	require.False(t, cfg.Psql.RunMigrations)
	require.False(t, cfg.Psql.Seed)
	require.Equal(t, uint(3), cfg.Feed.MaxTries)
}

func TestLoadSeedToggle(t *testing.T) {
	t.Setenv("PSQL_SEED", "true")
	t.Setenv("PSQL_RUN_MIGRATIONS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Psql.Seed)
	require.True(t, cfg.Psql.RunMigrations)
}
