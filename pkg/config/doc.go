// Package config loads process configuration from environment variables into
// plain Go structs.
//
// It wraps github.com/joho/godotenv for .env files and github.com/caarlos0/env/v11
// for struct-tag parsing. Every configuration type is parsed once and cached for the
// lifetime of the process, which matches how the notifier treats configuration:
// read at startup, never re-read implicitly.
//
// # Usage
//
//	type MailConfig struct {
//	    APIKey string `env:"PROVIDER_API_KEY"`
//	    From   string `env:"EMAIL_FROM" envDefault:"WizDesk <onboarding@resend.dev>"`
//	}
//
//	var cfg MailConfig
//	config.MustLoad(&cfg)
//
// Load reads ./.env on first use if it exists. Call LoadEnv with explicit paths
// before the first Load to use other files.
//
// # Errors
//
//   - ErrParsingConfig: env.Parse failed (missing required value, bad duration, ...)
//   - ErrLoadingEnvFile: an explicitly requested .env file could not be read
//   - ErrNilPointer: nil destination
//   - ErrConfigNotLoaded: cache invariant broken
//
// # Testing
//
// ResetCache clears everything; ForceReloadConfig re-parses a single type after
// t.Setenv.
package config
