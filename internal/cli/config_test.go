package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/seabattle/internal/factory"
	"github.com/mcoot/seabattle/internal/testutil"
)

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv("SEABATTLE_OUTPUT", "json")
	t.Setenv("SEABATTLE_SEED", "99")
	t.Setenv("SEABATTLE_STORAGE", "redis")
	t.Setenv("SEABATTLE_REDIS_URL", "redis://cache:6379")

	cfg := DefaultConfig()

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "99", cfg.Seed)
	assert.Equal(t, factory.StorageTypeRedis, cfg.Storage)
	assert.Equal(t, "redis://cache:6379", cfg.RedisURL)
}

func TestDefaultConfigDefaults(t *testing.T) {
	t.Setenv("SEABATTLE_OUTPUT", "")
	t.Setenv("SEABATTLE_SEED", "")
	t.Setenv("SEABATTLE_STORAGE", "")
	t.Setenv("SEABATTLE_REDIS_URL", "")

	cfg := DefaultConfig()

	assert.Equal(t, FormatText, cfg.Output)
	assert.Empty(t, cfg.Seed)
	assert.Equal(t, factory.StorageTypeMemory, cfg.Storage)
	assert.False(t, cfg.Verbose)
}

func TestParseSeed(t *testing.T) {
	cfg := &Config{}
	seed, err := cfg.ParseSeed()
	require.NoError(t, err)
	assert.Nil(t, seed)

	cfg.Seed = "42"
	seed, err = cfg.ParseSeed()
	require.NoError(t, err)
	require.NotNil(t, seed)
	assert.Equal(t, uint64(42), *seed)

	cfg.Seed = "-1"
	_, err = cfg.ParseSeed()
	assert.ErrorContains(t, err, "invalid seed")
}

func TestFactoryConfigRedis(t *testing.T) {
	cfg := &Config{Storage: factory.StorageTypeRedis, RedisURL: "redis://cache:6379", Seed: "7"}

	fcfg, err := cfg.FactoryConfig(testutil.NopLogger())
	require.NoError(t, err)

	require.NotNil(t, fcfg.RedisConfig)
	assert.Equal(t, "redis://cache:6379", fcfg.RedisConfig.URL)
	assert.Equal(t, factory.StorageTypeRedis, fcfg.StorageType)
	require.NotNil(t, fcfg.Seed)
	assert.Equal(t, uint64(7), *fcfg.Seed)
}

func TestFactoryConfigRedisRequiresURL(t *testing.T) {
	cfg := &Config{Storage: factory.StorageTypeRedis}

	_, err := cfg.FactoryConfig(testutil.NopLogger())
	assert.ErrorContains(t, err, "SEABATTLE_REDIS_URL")
}

func TestFactoryConfigMemory(t *testing.T) {
	cfg := &Config{Storage: factory.StorageTypeMemory}

	fcfg, err := cfg.FactoryConfig(testutil.NopLogger())
	require.NoError(t, err)
	assert.Nil(t, fcfg.RedisConfig)
	assert.Nil(t, fcfg.Seed)
}

func TestLoadEnvFile(t *testing.T) {
	const key = "SEABATTLE_TEST_DOTENV"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o600))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv(key))
}

func TestLoadEnvFileDoesNotOverride(t *testing.T) {
	const key = "SEABATTLE_TEST_DOTENV_SET"
	t.Setenv(key, "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o600))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-env", os.Getenv(key))
}

func TestLoadEnvFileMissing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")))
}
