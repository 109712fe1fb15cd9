package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Client is the full configuration of the state layer.
type Client struct {
	// APIBaseURL is the backend endpoint; defaults to production
	APIBaseURL string `env:"SHOPHUB_API_URL" envDefault:"https://shophub-production-cad4.up.railway.app/api"`

	// HTTPTimeout bounds each request; there is no per-operation timeout in
	// the stores themselves
	HTTPTimeout time.Duration `env:"SHOPHUB_HTTP_TIMEOUT" envDefault:"30s"`

	// StorageBackend selects durable persistence: memory, file, or redis
	StorageBackend string `env:"SHOPHUB_STORAGE" envDefault:"file"`

	// StoragePath locates the state file for the file backend
	StoragePath string `env:"SHOPHUB_STORAGE_PATH" envDefault:".shophub/state.json"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"SHOPHUB_LOG_LEVEL" envDefault:"info"`

	// LogFormat is json or text
	LogFormat string `env:"SHOPHUB_LOG_FORMAT" envDefault:"text"`
}

var defaultEnvLoaded sync.Once

// Load parses environment variables into v. The default .env file is loaded
// once per process before the first parse; a missing .env file is not an
// error.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure, for configurations the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
