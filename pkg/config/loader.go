package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores one parsed value per configuration type.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// Load parses the process environment into v once per type; later calls
// for the same type return the cached copy. A .env file in the working
// directory is loaded first when present.
//
//	type Settings struct {
//		Engine string `env:"DTO_ENGINE" envDefault:"rules"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	globalCache.mu.RLock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		globalCache.mu.RUnlock()
		return nil
	}
	globalCache.mu.RUnlock()

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			// Allow a retry after the environment has been fixed.
			globalCache.mu.Lock()
			delete(globalCache.onces, typeName)
			globalCache.mu.Unlock()
			return
		}

		globalCache.mu.Lock()
		globalCache.values[typeName] = *v
		globalCache.mu.Unlock()
	})
	if err != nil {
		return err
	}

	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads env files into the process environment without overriding
// variables that are already set.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

// Option configures Parse.
type Option func(*parseOptions)

type parseOptions struct {
	files     []string
	overrides map[string]string
	prefix    string
	useOS     bool
}

// WithEnvFiles reads variables from env files. Process variables and
// WithEnvironment values take precedence.
func WithEnvFiles(paths ...string) Option {
	return func(o *parseOptions) {
		o.files = append(o.files, paths...)
	}
}

// WithEnvironment supplies variables that override every other source.
func WithEnvironment(vars map[string]string) Option {
	return func(o *parseOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]string, len(vars))
		}
		maps.Copy(o.overrides, vars)
	}
}

// WithoutProcessEnv ignores the process environment.
func WithoutProcessEnv() Option {
	return func(o *parseOptions) {
		o.useOS = false
	}
}

// WithPrefix prepends prefix to every env tag, e.g. "DTO_".
func WithPrefix(prefix string) Option {
	return func(o *parseOptions) {
		o.prefix = prefix
	}
}

// Parse fills v from env files, the process environment and overrides,
// in increasing order of precedence. It neither caches nor modifies the
// process environment.
func Parse[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	o := &parseOptions{useOS: true}
	for _, opt := range opts {
		opt(o)
	}

	vars := make(map[string]string)
	if len(o.files) > 0 {
		fromFiles, err := godotenv.Read(o.files...)
		if err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		maps.Copy(vars, fromFiles)
	}
	if o.useOS {
		maps.Copy(vars, env.ToMap(os.Environ()))
	}
	maps.Copy(vars, o.overrides)

	if err := env.ParseWithOptions(v, env.Options{Environment: vars, Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func getTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
