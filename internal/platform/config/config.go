package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SourceMemory   = "memory"
	SourceAPI      = "api"
	SourcePostgres = "postgres"

	AuthDev      = "dev"
	AuthJWT      = "jwt"
	AuthUpstream = "upstream"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

type Config struct {
	Port      string `mapstructure:"PORT"`
	Env       string `mapstructure:"ENV"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	AppName   string `mapstructure:"APP_NAME"`

	Source          string        `mapstructure:"SOURCE"`
	UpstreamAPIURL  string        `mapstructure:"UPSTREAM_API_URL"`
	UpstreamTimeout time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	DBDSN           string        `mapstructure:"DB_DSN"`

	AuthMode  string `mapstructure:"AUTH_MODE"`
	JWTSecret string `mapstructure:"JWT_SECRET"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"SOURCE", "UPSTREAM_API_URL", "UPSTREAM_TIMEOUT", "DB_DSN",
	"AUTH_MODE", "JWT_SECRET",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

// Load lee env + .env opcional (en envFile; "" => ".env").
func Load(envFile string) (*Config, error) {
	v := viper.New()
	if envFile == "" {
		envFile = ".env"
	}
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "clinic-records")
	v.SetDefault("SOURCE", SourceMemory)
	v.SetDefault("UPSTREAM_API_URL", "http://localhost:8000")
	v.SetDefault("UPSTREAM_TIMEOUT", "10s")
	v.SetDefault("AUTH_MODE", AuthDev)
	v.SetDefault("RATE_LIMIT_RPS", 50)
	v.SetDefault("RATE_LIMIT_BURST", 100)

	// Unmarshal solo ve las env vars ligadas explícitamente.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// Sin .env no es error.
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	c.AuthMode = strings.ToLower(strings.TrimSpace(c.AuthMode))
	c.UpstreamAPIURL = strings.TrimRight(strings.TrimSpace(c.UpstreamAPIURL), "/")
	c.Port = strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

func (c *Config) Validate() error {
	switch c.Source {
	case SourceMemory:
	case SourceAPI:
		if c.UpstreamAPIURL == "" {
			return fmt.Errorf("%w: SOURCE=api requires UPSTREAM_API_URL", ErrInvalidConfig)
		}
	case SourcePostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return fmt.Errorf("%w: SOURCE=postgres requires DB_DSN", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown SOURCE %q", ErrInvalidConfig, c.Source)
	}

	switch c.AuthMode {
	case AuthDev:
	case AuthJWT:
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("%w: AUTH_MODE=jwt requires JWT_SECRET", ErrInvalidConfig)
		}
	case AuthUpstream:
		if c.UpstreamAPIURL == "" {
			return fmt.Errorf("%w: AUTH_MODE=upstream requires UPSTREAM_API_URL", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown AUTH_MODE %q", ErrInvalidConfig, c.AuthMode)
	}

	if c.Port == "" {
		return fmt.Errorf("%w: PORT is empty", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) Addr() string { return ":" + c.Port }

func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
