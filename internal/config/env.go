package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable, e.g. LABELCONSOLE_SERVER_URL
const EnvPrefix = "LABELCONSOLE"

// EnvFile is read from the working directory when present
const EnvFile = ".env"

// Env holds environment overrides. Empty values leave saved settings alone.
type Env struct {
	ServerURL      string        `envconfig:"SERVER_URL"`
	StoreName      string        `envconfig:"STORE_NAME"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat      string        `envconfig:"LOG_FORMAT" default:"console"`
}

// LoadEnv reads LABELCONSOLE_* variables, after loading EnvFile
func LoadEnv() (*Env, error) {
	return LoadEnvFiles(EnvFile)
}

// LoadEnvFiles loads the given dotenv files, skipping missing ones, then
// reads LABELCONSOLE_* variables. Variables already set in the process
// environment win over file values.
func LoadEnvFiles(files ...string) (*Env, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	return &env, nil
}

// ServerURLOrDefault returns the configured server URL or DefaultServerURL
func (e *Env) ServerURLOrDefault() string {
	if e.ServerURL != "" {
		return e.ServerURL
	}
	return DefaultServerURL
}

// RequestTimeoutOrDefault returns the configured timeout or DefaultRequestTimeout
func (e *Env) RequestTimeoutOrDefault() time.Duration {
	if e.RequestTimeout > 0 {
		return e.RequestTimeout
	}
	return DefaultRequestTimeout
}
