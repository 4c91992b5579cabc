package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var errInvalidConfig = errors.New("invalid configuration")

type App struct {
	Env             string        `yaml:"env" env:"APP_ENV" env-default:"dev" validate:"oneof=dev staging prod"`
	Port            string        `yaml:"port" env:"API_PORT" env-default:"8000" validate:"required,numeric"`
	DBDriver        string        `yaml:"db_driver" env:"DB_DRIVER" env-default:"sqlite" validate:"oneof=sqlite postgres"`
	DBConnectionURL string        `yaml:"db_connection_url" env:"DB_CONNECTION_URL" env-default:"students.db" validate:"required"`
	SessionSecret   string        `yaml:"session_secret" env:"SESSION_SECRET" validate:"required,min=16"`
	SessionCookie   string        `yaml:"session_cookie" env:"SESSION_COOKIE" env-default:"roster_session" validate:"required"`
	SessionTTL      time.Duration `yaml:"session_ttl" env:"SESSION_TTL" env-default:"24h" validate:"gt=0"`
	AnonymousTTL    time.Duration `yaml:"anonymous_session_ttl" env:"ANONYMOUS_SESSION_TTL" env-default:"10m" validate:"gt=0"`
	CookieSecure    bool          `yaml:"cookie_secure" env:"COOKIE_SECURE" env-default:"false"`
	AdminUsername   string        `yaml:"admin_username" env:"ADMIN_USERNAME" env-default:"admin" validate:"required"`
	AdminPassword   string        `yaml:"admin_password" env:"ADMIN_PASSWORD" env-default:"admin123" validate:"required"`
	BcryptCost      int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10" validate:"min=4,max=31"`
	LogLevel        string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
}

// NewApp builds the application config. Values come from the environment (after an optional
// .env file) and, when configPath is set, from a YAML file whose keys the environment overrides.
func NewApp(configPath string) (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return App{}, fmt.Errorf("load .env file: %w", err)
	}

	var cfg App
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return App{}, fmt.Errorf("read config file %q: %w", configPath, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return App{}, fmt.Errorf("read environment: %w", err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return App{}, fmt.Errorf("%w: %w", errInvalidConfig, err)
	}

	return cfg, nil
}

func (a App) IsDev() bool {
	return a.Env == EnvDev
}
