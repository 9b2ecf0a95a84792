package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// typeCache keeps one parsed copy of every configuration struct, keyed by type name.
type typeCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

func newTypeCache() *typeCache {
	return &typeCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

var (
	cache = newTypeCache()

	dotenvMu     sync.Mutex
	dotenvLoaded bool
)

// LoadEnv reads one or more .env files into the process environment.
// Without arguments it reads ./.env. Later files take precedence over earlier ones,
// and variables already present in the environment are overwritten.
func LoadEnv(paths ...string) error {
	dotenvMu.Lock()
	defer dotenvMu.Unlock()

	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	dotenvLoaded = true
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// loadDefaultEnv reads ./.env once, unless LoadEnv was already called.
// A missing file is not an error.
func loadDefaultEnv() {
	dotenvMu.Lock()
	defer dotenvMu.Unlock()

	if dotenvLoaded {
		return
	}
	_ = godotenv.Load()
	dotenvLoaded = true
}

// Load parses environment variables into v using `env` struct tags.
// Each configuration type is parsed once per process; subsequent calls
// are served from the cache.
//
// Example:
//
//	type MailConfig struct {
//		APIKey string `env:"PROVIDER_API_KEY"`
//		From   string `env:"EMAIL_FROM" envDefault:"noreply@example.com"`
//	}
//
//	var cfg MailConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()

	key := typeKey[T]()
	if cache.get(key, v) {
		return nil
	}

	cache.mu.Lock()
	once, ok := cache.onces[key]
	if !ok {
		once = new(sync.Once)
		cache.onces[key] = once
	}
	cache.mu.Unlock()

	var err error
	once.Do(func() {
		err = cache.parse(key, v)
	})
	if err != nil {
		// Allow a later call to retry after the environment has been fixed.
		cache.mu.Lock()
		delete(cache.onces, key)
		cache.mu.Unlock()
		return err
	}

	if cache.get(key, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad is like Load but panics on error.
// Use it for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig re-parses the environment for the type of v, bypassing the cache.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	key := typeKey[T]()

	cache.mu.Lock()
	delete(cache.values, key)
	delete(cache.onces, key)
	cache.mu.Unlock()

	return cache.parse(key, v)
}

// ResetCache drops every cached configuration and forgets that .env was read.
// Intended for tests.
func ResetCache() {
	cache.mu.Lock()
	cache.values = make(map[string]any)
	cache.onces = make(map[string]*sync.Once)
	cache.mu.Unlock()

	dotenvMu.Lock()
	dotenvLoaded = false
	dotenvMu.Unlock()
}

func (c *typeCache) get(key string, dst any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.values[key]
	if !ok {
		return false
	}
	reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(cached))
	return true
}

func (c *typeCache) parse(key string, v any) error {
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	c.mu.Lock()
	// store a copy so callers cannot mutate the cached value
	c.values[key] = reflect.ValueOf(v).Elem().Interface()
	c.mu.Unlock()
	return nil
}

func typeKey[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
