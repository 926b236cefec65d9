// Package config loads application configuration from environment
// variables into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - `.env` files are read with WithFiles or LoadEnv. Variables that are
//     already set always win over file values.
//   - Struct fields are populated from `env` / `envDefault` tags, optionally
//     namespaced with WithPrefix.
//   - WithEnvironment parses from an explicit map, which keeps tests and
//     CLIs independent of the process environment.
//
// # Usage
//
//	type Config struct {
//	    Timezone string `env:"TIMEZONE"`
//	    Locale   string `env:"LOCALE" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("CHRONO_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – a .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
