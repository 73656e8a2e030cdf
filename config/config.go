package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT" env-default:"5000"`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" env-default:"1048576"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"15s"`
}

type DatabaseConfig struct {
	URI             string        `env:"MONGO_URI"`
	DatabaseName    string        `env:"MONGO_DB" env-default:"inotebook"`
	MaxPoolSize     uint64        `env:"MONGO_MAX_POOL_SIZE" env-default:"100"`
	MinPoolSize     uint64        `env:"MONGO_MIN_POOL_SIZE" env-default:"10"`
	MaxConnIdleTime time.Duration `env:"MONGO_MAX_CONN_IDLE_TIME" env-default:"60s"`
	RetryWrites     bool          `env:"MONGO_RETRY_WRITES" env-default:"true"`
	ConnectRetries  uint          `env:"MONGO_CONNECT_RETRIES" env-default:"3"`
}

// JWTConfig controls token signing. A zero TokenTTL issues tokens without
// an exp claim.
type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET_KEY"`
	TokenTTL time.Duration `env:"TOKEN_TTL" env-default:"0s"`
}

// RedisConfig enables token revocation when URL is set.
type RedisConfig struct {
	URL           string        `env:"REDIS_URL"`
	RevocationTTL time.Duration `env:"REVOCATION_TTL" env-default:"24h"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Pretty bool   `env:"LOG_PRETTY" env-default:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Database.URI == "" {
		errs = append(errs, errors.New("MONGO_URI is not set"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is not set"))
	}
	if c.JWT.TokenTTL < 0 {
		errs = append(errs, errors.New("TOKEN_TTL must not be negative"))
	}
	if c.Server.Port == "" {
		errs = append(errs, errors.New("PORT is not set"))
	}
	return errors.Join(errs...)
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}
