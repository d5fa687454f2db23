package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> parsed value
)

// Load parses environment variables into cfg. The first call for a given
// type parses and caches the result; later calls for the same type return
// the cached value. A .env file, if present, is loaded once per process
// before the first parse.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is not an error; real environments set
		// variables directly.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}

	if cached, loaded := cache.LoadOrStore(key, *cfg); loaded {
		*cfg = cached.(T)
	}
	return nil
}

// MustLoad is Load that panics on failure, for use during startup where a
// broken configuration should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
