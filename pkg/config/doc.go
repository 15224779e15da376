// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is loaded once, on the
//     first Load call, if it exists. Already exported variables win.
//   - LoadEnv loads explicit `.env` files on demand.
//   - Load parses the environment into any struct annotated with `env` and
//     `envDefault` tags. Field types implementing encoding.TextUnmarshaler
//     validate their own values.
//
// # Usage
//
//	type Settings struct {
//	    Uppercase bool   `env:"RUT_UPPERCASE" envDefault:"true"`
//	    Format    string `env:"RUT_FORMAT" envDefault:"strict"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("APP_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// WithEnvironment parses from an explicit map, which keeps tests independent
// of the process environment.
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into the struct.
//   - `ErrLoadingEnvFile` – an explicit `.env` file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
