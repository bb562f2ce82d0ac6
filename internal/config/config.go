package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env      string `env:"ENV"`
	HTTP     HTTPConfig
	Storage  StorageConfig
	Postgres PostgresConfig
	Tasks    TasksConfig
}

type TasksConfig struct {
	// IDFormat is "uuid" or "short" (t_ followed by ten base36 chars).
	IDFormat string `env:"TASK_ID_FORMAT" env-default:"uuid"`
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"localhost"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" env-default:"file"`
	// Key names the slot holding the serialized task list.
	Key        string `env:"STORAGE_KEY" env-default:"todo_tasks_v1"`
	FileDir    string `env:"STORAGE_FILE_DIR" env-default:"./data"`
	SQLitePath string `env:"STORAGE_SQLITE_PATH" env-default:"./data/todo.db"`
}

// Postgres settings are only read when Storage.Driver is "postgres".
type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-default:"localhost"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}
