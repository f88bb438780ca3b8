package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dto"
	"github.com/dmitrymomot/dto/pkg/config"
	"github.com/dmitrymomot/dto/pkg/logger"
	"github.com/dmitrymomot/dto/pkg/validator"
)

const envPrefix = "DTO_"

// Settings are read from DTO_* variables.
type Settings struct {
	Engine     string `env:"ENGINE" envDefault:"rules"`
	Lang       string `env:"LANG" envDefault:"en"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`
	LocalesDir string `env:"LOCALES_DIR"`
}

type settingsRecord struct {
	dto.Record
}

func (*settingsRecord) DefaultRules() map[string]validator.RuleSpec {
	return validator.Rules(map[string]string{
		"engine":     "required|in:rules,playground",
		"lang":       "required|alpha_dash|max:35",
		"log_level":  "required|in:debug,info,warn,error",
		"log_format": "required|in:text,json",
	})
}

func (s Settings) validate() error {
	rec := dto.FromMap[*settingsRecord](map[string]any{
		"engine":     s.Engine,
		"lang":       s.Lang,
		"log_level":  strings.ToLower(s.LogLevel),
		"log_format": strings.ToLower(s.LogFormat),
	}, dto.WithTypeName("settings"))
	return rec.MustValidate()
}

type sourceKey struct{}

type cliFlags struct {
	logLevel  string
	logFormat string
	engine    string
	lang      string
	locales   string
}

type app struct {
	flags    cliFlags
	envFiles []string
	settings Settings
	logger   *slog.Logger
}

// overrides maps explicitly set flags onto their DTO_* variables.
func (a *app) overrides(cmd *cobra.Command) map[string]string {
	bound := map[string]struct {
		env   string
		value string
	}{
		"log-level":  {"LOG_LEVEL", a.flags.logLevel},
		"log-format": {"LOG_FORMAT", a.flags.logFormat},
		"engine":     {"ENGINE", a.flags.engine},
		"lang":       {"LANG", a.flags.lang},
		"locales":    {"LOCALES_DIR", a.flags.locales},
	}

	vars := make(map[string]string)
	for name, b := range bound {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			vars[envPrefix+b.env] = b.value
		}
	}
	return vars
}

func (a *app) init(cmd *cobra.Command) error {
	opts := []config.Option{
		config.WithPrefix(envPrefix),
		config.WithEnvironment(a.overrides(cmd)),
	}
	if len(a.envFiles) > 0 {
		opts = append(opts, config.WithEnvFiles(a.envFiles...))
	}
	if err := config.Parse(&a.settings, opts...); err != nil {
		return err
	}
	if err := a.settings.validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	level, err := logger.ParseLevel(a.settings.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.settings.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component(appName)),
		logger.WithContextValue("source", sourceKey{}),
	)
	a.logger.Debug("settings loaded",
		slog.String("engine", a.settings.Engine),
		slog.String("lang", a.settings.Lang),
	)
	return nil
}

var errInvalidInput = errors.New("invalid input")
