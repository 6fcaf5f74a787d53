package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// ClientConfig holds the settings of the command-line client.
type ClientConfig struct {
	// ServerURL is the base URL of the task-tracker HTTP API.
	// Env: TASK_TRACKER_SERVER
	ServerURL string `env:"TASK_TRACKER_SERVER" envDefault:"http://localhost:8080"`

	// Token is a bearer token reused between invocations.
	// Env: TASK_TRACKER_TOKEN
	Token string `env:"TASK_TRACKER_TOKEN"`

	// RequestTimeout bounds every outbound request.
	// Env: TASK_TRACKER_TIMEOUT
	RequestTimeout time.Duration `env:"TASK_TRACKER_TIMEOUT" envDefault:"10s"`
}

// ErrInvalidClientConfig is returned when the client settings are unusable.
var ErrInvalidClientConfig = errors.New("invalid client configuration")

// GetClientConfig loads the client settings from the .env file and the
// process environment.
func GetClientConfig() (*ClientConfig, error) {
	if err := loadDotEnv(os.Getenv("ENV_FILE")); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" {
		return fmt.Errorf("%w: server url is required", ErrInvalidClientConfig)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfig)
	}
	return nil
}
