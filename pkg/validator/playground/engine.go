package playground

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"strings"

	gpvalidator "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/dto/pkg/validator"
)

// Engine implements validator.Engine on top of go-playground/validator.
// It is safe for concurrent use once built.
type Engine struct {
	validate   *gpvalidator.Validate
	fallback   validator.Engine
	logger     *slog.Logger
	observer   validator.Observer
	translator validator.Translator
	lang       string
}

type Option func(*Engine)

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithObserver reports every Validate call, e.g. to pkg/metrics.
func WithObserver(o validator.Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithTranslator localizes messages into lang.
func WithTranslator(tr validator.Translator, lang string) Option {
	return func(e *Engine) {
		e.translator = tr
		e.lang = lang
	}
}

// WithFallback sets the engine used for constraints go-playground cannot
// express. It receives one single-constraint rule set per call.
func WithFallback(engine validator.Engine) Option {
	return func(e *Engine) {
		e.fallback = engine
	}
}

// New builds an engine with the dto type checks registered.
func New(opts ...Option) *Engine {
	e := &Engine{
		validate: gpvalidator.New(gpvalidator.WithRequiredStructEnabled()),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.fallback == nil {
		e.fallback = validator.NewEngine(validator.WithLogger(e.logger))
	}

	for tag, fn := range customValidations {
		if err := e.validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("playground: register %s: %v", tag, err))
		}
	}
	return e
}

// Validate evaluates rules in field order, like validator.RuleEngine.
func (e *Engine) Validate(attrs map[string]any, rules map[string]validator.RuleSpec) validator.ValidationErrors {
	var errs validator.ValidationErrors

	fields := slices.Sorted(maps.Keys(rules))
	for _, name := range fields {
		errs = append(errs, e.validateField(name, attrs, rules[name])...)
	}

	if e.translator != nil {
		errs = errs.Translate(e.translator, e.lang)
	}

	e.logger.Debug("attributes validated",
		slog.String("engine", "playground"),
		slog.Int("fields", len(fields)),
		slog.Int("failures", len(errs)),
	)
	if e.observer != nil {
		e.observer.ObserveValidation(len(fields), errs)
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func (e *Engine) validateField(name string, attrs map[string]any, spec validator.RuleSpec) validator.ValidationErrors {
	value, present := attrs[name]
	if spec.Has("sometimes") && !present {
		return nil
	}
	if spec.Has("nullable") && present && validator.IsNil(value) {
		return nil
	}

	bail := spec.Has("bail")
	empty := !present || isBlank(value)

	var errs validator.ValidationErrors
	for _, c := range spec {
		cname, _ := validator.ParseConstraint(c)
		if isControl(cname) {
			continue
		}

		var failed validator.ValidationErrors
		if tag, ok := e.nativeTag(c, value, spec); ok {
			implicit := cname == "required" || cname == "filled"
			if cname == "filled" && !present {
				continue
			}
			if empty && !implicit {
				continue
			}
			if fe, passed := e.check(value, tag); !passed {
				failed = e.describe(name, attrs, spec, c, fe)
			}
		} else {
			failed = e.delegate(name, attrs, spec, c)
		}

		if len(failed) > 0 {
			errs = append(errs, failed...)
			if bail {
				break
			}
		}
	}
	return errs
}

// nativeTag picks the go-playground tag for c unless the value needs the
// fallback's semantics: numeric strings are sized by value, and oneof only
// supports strings and integers.
func (e *Engine) nativeTag(c string, value any, spec validator.RuleSpec) (string, bool) {
	tag, ok := TagFor(c)
	if !ok {
		return "", false
	}

	name, _ := validator.ParseConstraint(c)
	if _, sized := sizeTags[name]; sized || name == "between" {
		if _, isString := value.(string); isString && (spec.Has("numeric") || spec.Has("integer")) {
			return "", false
		}
	}
	if name == "in" {
		switch reflect.ValueOf(value).Kind() {
		case reflect.String, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		default:
			return "", false
		}
	}
	return tag, true
}

// check runs one tag against value. go-playground panics on kinds a tag
// does not support (min on a bool); that counts as a failure.
func (e *Engine) check(value any, tag string) (fe gpvalidator.FieldError, passed bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug("unsupported value for tag",
				slog.String("tag", tag),
				slog.String("type", fmt.Sprintf("%T", value)),
				slog.Any("panic", r),
			)
			fe, passed = nil, false
		}
	}()

	err := e.validate.Var(value, tag)
	if err == nil {
		return nil, true
	}
	var fieldErrs gpvalidator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0], false
	}
	return nil, false
}

// describe renders a native failure with the fallback's message for the same
// constraint, so both engines report identical errors. When the fallback
// accepts the value, the go-playground error is used.
func (e *Engine) describe(field string, attrs map[string]any, spec validator.RuleSpec, constraint string, fe gpvalidator.FieldError) validator.ValidationErrors {
	if errs := e.delegate(field, attrs, spec, constraint); len(errs) > 0 {
		return errs
	}
	return validator.ValidationErrors{fieldError(field, constraint, fe)}
}

// typeHints change how the fallback measures sizes.
var typeHints = []string{"numeric", "integer"}

// delegate evaluates a single constraint on the fallback. Type hints from
// the full spec ride along; their own failures are reported by the hint's
// own constraint and dropped here.
func (e *Engine) delegate(field string, attrs map[string]any, spec validator.RuleSpec, constraint string) validator.ValidationErrors {
	cname, _ := validator.ParseConstraint(constraint)
	single := validator.RuleSpec{constraint}
	dropped := make(map[string]bool)
	for _, hint := range typeHints {
		if hint != cname && spec.Has(hint) {
			single = append(single, hint)
			dropped["validation."+hint] = true
		}
	}

	var out validator.ValidationErrors
	for _, err := range e.fallback.Validate(attrs, map[string]validator.RuleSpec{field: single}) {
		if !dropped[err.TranslationKey] {
			out = append(out, err)
		}
	}
	return out
}

func isBlank(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
