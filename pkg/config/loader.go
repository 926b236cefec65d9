package config

import (
	"errors"
	"fmt"
	"maps"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*loader)

type loader struct {
	prefix      string
	files       []string
	environment map[string]string
}

// WithPrefix prepends prefix to every env tag, e.g. "CHRONO_" turns
// `env:"TIMEZONE"` into CHRONO_TIMEZONE.
func WithPrefix(prefix string) Option {
	return func(l *loader) {
		l.prefix = prefix
	}
}

// WithFiles reads the given .env files before parsing. Variables already
// present win over file values, and earlier files win over later ones.
// Missing files are an error.
func WithFiles(files ...string) Option {
	return func(l *loader) {
		for _, f := range files {
			if f != "" {
				l.files = append(l.files, f)
			}
		}
	}
}

// WithEnvironment parses from vars instead of the process environment.
// Files given with WithFiles are merged into a copy of vars and the
// process environment is left untouched.
func WithEnvironment(vars map[string]string) Option {
	return func(l *loader) {
		if vars != nil {
			l.environment = vars
		}
	}
}

// Load parses environment variables into v based on its `env` and
// `envDefault` field tags.
//
// Example:
//
//	type ServerConfig struct {
//		Host string `env:"HOST" envDefault:"localhost"`
//		Port int    `env:"PORT" envDefault:"8080"`
//	}
//
//	var cfg ServerConfig
//	err := config.Load(&cfg, config.WithPrefix("APP_"), config.WithFiles(".env"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	envOpts := env.Options{Prefix: l.prefix}
	switch {
	case l.environment != nil:
		vars := maps.Clone(l.environment)
		for _, f := range l.files {
			fileVars, err := godotenv.Read(f)
			if err != nil {
				return errors.Join(ErrLoadingEnvFile, err)
			}
			for k, val := range fileVars {
				if _, ok := vars[k]; !ok {
					vars[k] = val
				}
			}
		}
		envOpts.Environment = vars
	case len(l.files) > 0:
		if err := LoadEnv(l.files...); err != nil {
			return err
		}
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads .env files into the process environment without
// overriding variables that are already set. With no arguments the .env
// file of the working directory is loaded.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
