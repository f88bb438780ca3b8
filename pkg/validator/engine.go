package validator

import (
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// Engine validates an attribute map against per-attribute rule specs.
// Implementations must not modify either map.
type Engine interface {
	Validate(attrs map[string]any, rules map[string]RuleSpec) ValidationErrors
}

// EngineFunc adapts a plain function to the Engine interface.
type EngineFunc func(attrs map[string]any, rules map[string]RuleSpec) ValidationErrors

func (f EngineFunc) Validate(attrs map[string]any, rules map[string]RuleSpec) ValidationErrors {
	return f(attrs, rules)
}

// Field is what a constraint sees when it is evaluated.
type Field struct {
	Name       string
	Value      any
	Present    bool
	Params     []string
	Spec       RuleSpec
	Attributes map[string]any
}

// Constraint builds the Rule for one field. It is called only when the
// constraint applies, so it may assume the value is present and not empty
// unless it is registered as implicit.
type Constraint func(f Field) Rule

// Observer receives the outcome of every Validate call.
type Observer interface {
	ObserveValidation(fields int, errs ValidationErrors)
}

// Translator renders a translation key for a language.
type Translator interface {
	T(lang, key string, args ...any) string
}

type constraintEntry struct {
	fn       Constraint
	implicit bool
}

// RuleEngine is the built-in Engine. It is immutable after construction and
// safe for concurrent use.
type RuleEngine struct {
	constraints map[string]constraintEntry
	logger      *slog.Logger
	observer    Observer
	translator  Translator
	lang        string
}

// Option configures a RuleEngine.
type Option func(*RuleEngine)

func WithLogger(l *slog.Logger) Option {
	return func(e *RuleEngine) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(e *RuleEngine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithTranslator renders every produced message through tr in lang.
func WithTranslator(tr Translator, lang string) Option {
	return func(e *RuleEngine) {
		if tr != nil {
			e.translator = tr
			e.lang = lang
		}
	}
}

// WithConstraint registers a custom constraint, replacing a built-in one of
// the same name.
func WithConstraint(name string, c Constraint) Option {
	return func(e *RuleEngine) {
		if name != "" && c != nil {
			e.constraints[name] = constraintEntry{fn: c}
		}
	}
}

// WithImplicitConstraint registers a constraint that also runs when the
// attribute is absent or empty, the way "required" does.
func WithImplicitConstraint(name string, c Constraint) Option {
	return func(e *RuleEngine) {
		if name != "" && c != nil {
			e.constraints[name] = constraintEntry{fn: c, implicit: true}
		}
	}
}

// NewEngine creates a RuleEngine with the built-in constraint vocabulary.
func NewEngine(opts ...Option) *RuleEngine {
	e := &RuleEngine{
		constraints: builtinConstraints(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = sync.OnceValue(func() *RuleEngine { return NewEngine() })

// Default returns a shared engine with the built-in vocabulary and no logging.
func Default() *RuleEngine {
	return defaultEngine()
}

// Constraints lists the registered constraint names in sorted order,
// including the control words nullable, sometimes and bail.
func (e *RuleEngine) Constraints() []string {
	names := slices.Collect(maps.Keys(e.constraints))
	names = append(names, ctrlNullable, ctrlSometimes, ctrlBail)
	slices.Sort(names)
	return names
}

// Validate evaluates every rule in field order. Attributes without rules are
// not checked. Fields missing from attrs are evaluated as absent: only
// implicit constraints such as required run for them.
func (e *RuleEngine) Validate(attrs map[string]any, rules map[string]RuleSpec) ValidationErrors {
	var errs ValidationErrors

	fields := slices.Sorted(maps.Keys(rules))
	for _, name := range fields {
		errs = append(errs, e.validateField(name, attrs, rules[name])...)
	}

	if e.translator != nil {
		errs = errs.Translate(e.translator, e.lang)
	}

	e.logger.Debug("attributes validated",
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

func (e *RuleEngine) validateField(name string, attrs map[string]any, spec RuleSpec) ValidationErrors {
	value, present := attrs[name]
	if spec.Has(ctrlSometimes) && !present {
		return nil
	}
	if spec.Has(ctrlNullable) && present && IsNil(value) {
		return nil
	}

	bail := spec.Has(ctrlBail)
	empty := !present || isBlankString(value)

	var errs ValidationErrors
	for _, c := range spec {
		cname, params := ParseConstraint(c)
		if isControl(cname) {
			continue
		}

		entry, ok := e.constraints[cname]
		if !ok {
			e.logger.Warn("unknown constraint", slog.String("field", name), slog.String("constraint", cname))
			errs.Add(unknownConstraintError(name, cname))
			if bail {
				break
			}
			continue
		}
		if empty && !entry.implicit {
			continue
		}

		rule := entry.fn(Field{
			Name:       name,
			Value:      value,
			Present:    present,
			Params:     params,
			Spec:       spec,
			Attributes: attrs,
		})
		if !rule.Check() {
			errs.Add(rule.Error)
			if bail {
				break
			}
		}
	}
	return errs
}
