package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/dto/pkg/i18n"
	"github.com/dmitrymomot/dto/pkg/metrics"
	"github.com/dmitrymomot/dto/pkg/validator"
	"github.com/dmitrymomot/dto/pkg/validator/playground"
)

const (
	engineRules      = "rules"
	enginePlayground = "playground"
)

func (a *app) translator(ctx context.Context) (*i18n.Translator, error) {
	adapters := i18n.MultiAdapter{i18n.DefaultCatalog()}
	if dir := a.settings.LocalesDir; dir != "" {
		adapters = append(adapters, i18n.NewFSAdapter(os.DirFS(dir), "."))
	}
	return i18n.NewTranslator(ctx, adapters,
		i18n.WithLogger(a.logger),
		i18n.WithMissingTranslationsLogging(true),
	)
}

// engine builds the configured validation engine. A non-nil reg receives
// validation metrics.
func (a *app) engine(ctx context.Context, reg prometheus.Registerer) (validator.Engine, error) {
	tr, err := a.translator(ctx)
	if err != nil {
		return nil, err
	}
	lang := tr.Match(a.settings.Lang)

	var observer validator.Observer
	if reg != nil {
		observer = metrics.NewValidationObserver(reg)
	}

	switch a.settings.Engine {
	case enginePlayground:
		return playground.New(
			playground.WithLogger(a.logger),
			playground.WithTranslator(tr, lang),
			playground.WithObserver(observer),
		), nil
	default:
		return validator.NewEngine(
			validator.WithLogger(a.logger),
			validator.WithTranslator(tr, lang),
			validator.WithObserver(observer),
		), nil
	}
}
