package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetra/config"
	"github.com/plus3/tetra/engine"
)

// unset clears key for the duration of the test; t.Setenv restores it.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{config.EnvWidth, config.EnvHeight, config.EnvLogLevel, config.EnvPlayer, config.EnvMaxSessionsPerIP} {
		unset(t, key)
	}

	s, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s)
	assert.Equal(t, engine.DefaultSpawn, s.Engine.Spawn)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvWidth, "12")
	t.Setenv(config.EnvHeight, "24")
	t.Setenv(config.EnvStepDelay, "0.5")
	t.Setenv(config.EnvMaxGroundedMoves, "7")
	t.Setenv(config.EnvDatabase, "/tmp/scores.db")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvPlayer, "ada")
	t.Setenv(config.EnvMaxSessionsPerIP, "4")

	s, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 12, s.Engine.Width)
	assert.Equal(t, 24, s.Engine.Height)
	assert.Equal(t, 0.5, s.Engine.StepDelay)
	assert.Equal(t, 7, s.Engine.MaxGroundedMoves)
	assert.Equal(t, engine.Point{X: -1, Y: 10}, s.Engine.Spawn)
	assert.Equal(t, "/tmp/scores.db", s.DatabasePath)
	assert.Equal(t, log.DebugLevel, s.LogLevel)
	assert.Equal(t, "ada", s.Player)
	assert.Equal(t, 4, s.MaxSessionsPerIP)
}

func TestFromEnvErrors(t *testing.T) {
	t.Setenv(config.EnvWidth, "wide")
	t.Setenv(config.EnvLockDelay, "-1")
	t.Setenv(config.EnvLogLevel, "loud")
	t.Setenv(config.EnvMaxSessionsPerIP, "0")

	_, err := config.FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvWidth)
	assert.Contains(t, err.Error(), config.EnvLogLevel)
	assert.Contains(t, err.Error(), config.EnvMaxSessionsPerIP)
	assert.Contains(t, err.Error(), "lock delay must be positive")
}

func TestLoadDotEnv(t *testing.T) {
	unset(t, config.EnvPlayer)
	unset(t, config.EnvSSHAddr)
	t.Setenv(config.EnvDatabase, "from-env.db")

	path := filepath.Join(t.TempDir(), ".env")
	data := "TETRA_PLAYER=bob\nTETRA_SSH_ADDR=127.0.0.1:2222\nTETRA_DB=from-file.db\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bob", s.Player)
	assert.Equal(t, "127.0.0.1:2222", s.SSHAddr)
	assert.Equal(t, "from-env.db", s.DatabasePath, "environment wins over the file")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestSpawnFor(t *testing.T) {
	assert.Equal(t, engine.DefaultSpawn, config.SpawnFor(engine.DefaultWidth, engine.DefaultHeight))
	assert.Equal(t, engine.Point{X: -1, Y: 1}, config.SpawnFor(6, 6))
}
