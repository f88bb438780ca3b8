// Package config loads configuration structs from environment variables
// using github.com/caarlos0/env tags and optional .env files read with
// github.com/joho/godotenv.
//
// Load parses the process environment once per type and caches the result,
// which suits application start-up. Parse is the uncached variant with
// explicit sources, used by tools and tests:
//
//	type Settings struct {
//		Engine string `env:"ENGINE" envDefault:"rules"`
//		Lang   string `env:"LANG" envDefault:"en"`
//	}
//
//	var s Settings
//	err := config.Parse(&s,
//		config.WithPrefix("DTO_"),
//		config.WithEnvFiles(".env"),
//	)
//
// Errors wrap ErrParsingConfig or ErrLoadingEnvFile and can be matched with
// errors.Is.
package config
