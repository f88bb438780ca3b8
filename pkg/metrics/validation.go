// Package metrics records validation outcomes as Prometheus metrics.
//
//	reg := prometheus.NewRegistry()
//	engine := validator.NewEngine(validator.WithObserver(metrics.NewValidationObserver(reg)))
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/dto/pkg/validator"
)

const (
	ResultPassed = "passed"
	ResultFailed = "failed"
)

// ValidationObserver implements validator.Observer.
type ValidationObserver struct {
	validations *prometheus.CounterVec
	failures    *prometheus.CounterVec
	fields      prometheus.Histogram
}

// NewValidationObserver registers the validation metrics on reg; a nil reg
// means prometheus.DefaultRegisterer. Registering twice on the same
// registerer panics.
func NewValidationObserver(reg prometheus.Registerer) *ValidationObserver {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &ValidationObserver{
		// validations counts Validate calls by result
		validations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dto_validations_total",
				Help: "Total number of record validations",
			},
			[]string{"result"},
		),
		// failures counts failed constraints
		failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dto_validation_failures_total",
				Help: "Total number of failed constraints by field and rule",
			},
			[]string{"field", "rule"},
		),
		fields: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dto_validated_fields",
				Help:    "Number of fields with rules per validation",
				Buckets: []float64{1, 2, 5, 10, 20, 50},
			},
		),
	}
}

func (o *ValidationObserver) ObserveValidation(fields int, errs validator.ValidationErrors) {
	o.fields.Observe(float64(fields))

	if errs.IsEmpty() {
		o.validations.WithLabelValues(ResultPassed).Inc()
		return
	}
	o.validations.WithLabelValues(ResultFailed).Inc()
	for _, err := range errs {
		o.failures.WithLabelValues(err.Field, RuleName(err.TranslationKey)).Inc()
	}
}

// RuleName extracts the constraint from a translation key:
// "validation.min.string" → "min". Keys outside the validation namespace
// are returned unchanged, empty keys as "custom".
func RuleName(key string) string {
	if key == "" {
		return "custom"
	}
	rest, ok := strings.CutPrefix(key, "validation.")
	if !ok {
		return key
	}
	name, _, _ := strings.Cut(rest, ".")
	return name
}
