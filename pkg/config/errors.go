package config

import "errors"

var (
	// ErrParsingConfig is returned when variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrConfigNotLoaded is returned when a cached config is unexpectedly missing.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
