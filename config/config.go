package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string   `envconfig:"PORT"               default:"5000"`
	Env         string   `envconfig:"APP_ENV"            default:"development"`
	LogLevel    string   `envconfig:"LOG_LEVEL"          default:"info"`
	CartBackend string   `envconfig:"CART_BACKEND"       default:"memory"` // memory | redis
	RedisAddr   string   `envconfig:"REDIS_ADDR"         default:"localhost:6379"`
	CORSOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

func LoadConfig(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Infof("Configuration loaded: Port=%s, Env=%s, CartBackend=%s", cfg.Port, cfg.Env, cfg.CartBackend)
	return &cfg, nil
}

// Addr is the listen address derived from Port.
func (c *Config) Addr() string { return ":" + c.Port }

// IsProduction gates verbose error output; anything but "production" counts
// as a development build.
func (c *Config) IsProduction() bool { return c.Env == "production" }
