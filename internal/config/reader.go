package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct {
	defaultEnv string
}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

// NewEnvReaderWithDefaultEnv returns a reader that uses env when ENV
// is unset or empty.
func NewEnvReaderWithDefaultEnv(env string) EnvReader {
	return EnvReader{defaultEnv: env}
}

func (r EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Env == "" {
		cfg.Env = r.defaultEnv
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Env {
	case "":
		return fmt.Errorf("ENV is required")
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %s", c.Env)
	}

	switch c.Storage.Driver {
	case StorageDriverFile, StorageDriverSQLite:
	case StorageDriverPostgres:
		if c.Postgres.Username == "" || c.Postgres.Database == "" {
			return fmt.Errorf("postgres storage requires POSTGRES_USERNAME and POSTGRES_DATABASE")
		}
	default:
		return fmt.Errorf("unknown storage driver: %s", c.Storage.Driver)
	}

	switch c.Tasks.IDFormat {
	case "uuid", "short":
	default:
		return fmt.Errorf("unknown task id format: %s", c.Tasks.IDFormat)
	}

	if c.Storage.Key == "" {
		return fmt.Errorf("storage key must not be empty")
	}
	return nil
}
