// Package config provides type-safe environment variable loading with
// per-type caching using Go generics.
//
// The package loads .env files once on first use and parses environment
// variables into struct fields via the caarlos0/env library.
//
// Basic usage:
//
//	type TwoFactorConfig struct {
//		Issuer string `env:"TOTP_ISSUER" envDefault:"Lockit"`
//		Window int    `env:"TOTP_WINDOW" envDefault:"6"`
//	}
//
//	var cfg TwoFactorConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
//
// Each configuration type is parsed only once per process; subsequent Load
// calls for the same type return the cached value.
package config
