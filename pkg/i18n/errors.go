package i18n

import "errors"

var (
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrLoadingCancelled  = errors.New("loading translations cancelled")
	ErrFailedToReadDir   = errors.New("failed to read translations directory")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrFailedToParseFile = errors.New("failed to parse translation file")
	ErrNoTranslations    = errors.New("no translation files found")

	ErrNilAdapter = errors.New("translation adapter is nil")
)
