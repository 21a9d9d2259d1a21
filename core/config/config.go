package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)

	// dotenvOnce guards the one-time .env load; a missing file is not an error.
	dotenvOnce sync.Once
)

// Load parses environment variables into cfg. The first call for each
// concrete type parses the environment; later calls return the cached value
// so every consumer observes the same configuration.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() { _ = godotenv.Load() })

	mu.Lock()
	defer mu.Unlock()

	t := reflect.TypeOf(*cfg)
	if cached, ok := cache[t]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to load %T: %w", *cfg, err)
	}

	cache[t] = *cfg
	return nil
}

// MustLoad is Load but panics on failure. Useful during application startup
// where a missing required variable should abort the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
