// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/lubomir-dlhy/immich/core/config"
//
//	type SMTPConfig struct {
//		Host     string `env:"SMTP_HOST"`
//		Port     int    `env:"SMTP_PORT"`
//		Username string `env:"SMTP_USERNAME"`
//		Password string `env:"SMTP_PASSWORD"`
//	}
//
//	func main() {
//		var smtp SMTPConfig
//
//		// Load with error handling
//		if err := config.Load(&smtp); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&smtp)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 SMTPConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 SMTPConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type ServerConfig struct {
//		ExternalDomain string `env:"IMMICH_EXTERNAL_DOMAIN"`
//	}
//
//	type PostmarkConfig struct {
//		ServerToken string `env:"POSTMARK_SERVER_TOKEN,required"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&ServerConfig{})
//	config.MustLoad(&PostmarkConfig{})
package config
