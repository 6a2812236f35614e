package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mcoot/seabattle/internal/factory"
	redisstorage "github.com/mcoot/seabattle/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	Output   string
	Verbose  bool
	Seed     string
	Storage  string
	RedisURL string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:   getEnvOrDefault("SEABATTLE_OUTPUT", "text"),
		Verbose:  false,
		Seed:     os.Getenv("SEABATTLE_SEED"),
		Storage:  getEnvOrDefault("SEABATTLE_STORAGE", factory.StorageTypeMemory),
		RedisURL: os.Getenv("SEABATTLE_REDIS_URL"),
	}
}

// ParseSeed returns the configured seed, or nil when none is set
func (c *Config) ParseSeed() (*uint64, error) {
	if c.Seed == "" {
		return nil, nil
	}
	seed, err := strconv.ParseUint(c.Seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: %w", c.Seed, err)
	}
	return &seed, nil
}

// FactoryConfig translates the CLI settings into an application factory config
func (c *Config) FactoryConfig(logger *slog.Logger) (factory.Config, error) {
	seed, err := c.ParseSeed()
	if err != nil {
		return factory.Config{}, err
	}

	fcfg := factory.Config{
		Logger:      logger,
		StorageType: c.Storage,
		Seed:        seed,
	}

	if c.Storage == factory.StorageTypeRedis {
		if c.RedisURL == "" {
			return factory.Config{}, errors.New("SEABATTLE_REDIS_URL (or --redis-url) required when storage is redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fcfg.RedisConfig = &redisCfg
	}

	return fcfg, nil
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
