package dto

import (
	"reflect"

	"github.com/dmitrymomot/dto/pkg/sanitizer"
	"github.com/dmitrymomot/dto/pkg/validator"
)

// Record is an attribute bag with a rule set and the errors of its last
// validation. Concrete record types embed it:
//
//	type Signup struct {
//		dto.Record
//	}
//
//	func (*Signup) DefaultRules() map[string]validator.RuleSpec {
//		return validator.Rules(map[string]string{
//			"email":    "required|email",
//			"password": "required|min:8|confirmed",
//		})
//	}
//
// The zero value is an empty, usable record named "Record" with no default
// rules; build records with New, FromMap or Init to get the embedding type's
// name and defaults wired in. A Record is owned by one caller at a time and
// must not be copied after first use.
type Record struct {
	attributes map[string]any
	rules      map[string]validator.RuleSpec
	errors     validator.ValidationErrors

	owner          Model
	typeName       string
	engine         validator.Engine
	nameConverter  func(string) string
	keyConverter   func(string) string
	inputSanitizer func(map[string]any) map[string]any
}

// Model is implemented by *Record and by pointers to structs embedding Record.
type Model interface {
	record() *Record
}

func (r *Record) record() *Record { return r }

// Base returns the Record embedded in m.
func Base(m Model) *Record {
	return m.record()
}

// RuleProvider declares the rule set a record type starts with.
type RuleProvider interface {
	DefaultRules() map[string]validator.RuleSpec
}

// Defaulter assigns initial attribute values; it runs once when the record
// is initialised, before any input is applied.
type Defaulter interface {
	Defaults()
}

// Checker contributes extra rules evaluated after the rule engine, for
// checks that do not fit a rule spec (cross-field logic, lookups).
type Checker interface {
	Checks() []validator.Rule
}

// Option configures a record at initialisation.
type Option func(*Record)

// WithEngine sets the engine used by Validate. Defaults to validator.Default().
func WithEngine(engine validator.Engine) Option {
	return func(r *Record) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithNameConverter replaces the accessor-name → attribute-name conversion
// used by Call. Defaults to sanitizer.ToSnakeCase.
func WithNameConverter(fn func(string) string) Option {
	return func(r *Record) {
		if fn != nil {
			r.nameConverter = fn
		}
	}
}

// WithKeyConverter rewrites input keys in FromMap and Fill, e.g.
// sanitizer.ToSnakeCase to accept camelCase payloads.
func WithKeyConverter(fn func(string) string) Option {
	return func(r *Record) {
		if fn != nil {
			r.keyConverter = fn
		}
	}
}

// WithInputSanitizer transforms input maps in FromMap and Fill before they
// are assigned, e.g. sanitizer.TrimStrings.
func WithInputSanitizer(fn func(map[string]any) map[string]any) Option {
	return func(r *Record) {
		if fn != nil {
			r.inputSanitizer = fn
		}
	}
}

// WithRules merges rules over the type's default rules.
func WithRules(rules map[string]validator.RuleSpec) Option {
	return func(r *Record) {
		r.MergeRules(rules)
	}
}

// WithTypeName overrides the name reported in errors.
func WithTypeName(name string) Option {
	return func(r *Record) {
		if name != "" {
			r.typeName = name
		}
	}
}

// New allocates and initialises a record of type T. An embedded *Record is
// allocated as well.
//
//	signup := dto.New[*Signup]()
//	rec := dto.New[*dto.Record](dto.WithRules(rules))
func New[T Model](opts ...Option) T {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil || t.Kind() != reflect.Pointer {
		panic("dto: New requires a pointer type embedding dto.Record")
	}
	v := reflect.New(t.Elem())
	allocEmbedded(v.Elem())
	return Init(v.Interface().(T), opts...)
}

// Init prepares an allocated record: it records the concrete type name,
// seeds DefaultRules, applies options and finally runs Defaults.
func Init[T Model](m T, opts ...Option) T {
	r := m.record()
	if r == nil {
		panic("dto: Init requires an allocated dto.Record")
	}
	r.owner = m
	r.typeName = typeNameOf(m)

	if rp, ok := any(m).(RuleProvider); ok {
		r.rules = validator.CloneRules(rp.DefaultRules())
	}
	for _, opt := range opts {
		opt(r)
	}
	if d, ok := any(m).(Defaulter); ok {
		d.Defaults()
	}
	return m
}

// FromMap creates a record of type T and assigns every entry of data as an
// attribute.
//
//	ex := dto.FromMap[*ExampleData](map[string]any{"first": "Hello", "second": 123})
func FromMap[T Model](data map[string]any, opts ...Option) T {
	m := New[T](opts...)
	m.record().Fill(data)
	return m
}

// TypeName returns the concrete record type name used in error messages.
func (r *Record) TypeName() string {
	if r.typeName == "" {
		return "Record"
	}
	return r.typeName
}

// Fill assigns every entry of data, after the configured input sanitizer
// and key converter, and returns the record.
func (r *Record) Fill(data map[string]any) *Record {
	if r.inputSanitizer != nil {
		data = r.inputSanitizer(data)
	}
	for key, value := range data {
		if r.keyConverter != nil {
			if key = r.keyConverter(key); key == "" {
				continue
			}
		}
		r.Set(key, value)
	}
	return r
}

func (r *Record) validationEngine() validator.Engine {
	if r.engine == nil {
		return validator.Default()
	}
	return r.engine
}

func (r *Record) convertName(s string) string {
	if r.nameConverter == nil {
		return sanitizer.ToSnakeCase(s)
	}
	return r.nameConverter(s)
}

var (
	modelType     = reflect.TypeFor[Model]()
	recordPtrType = reflect.TypeFor[*Record]()
)

// allocEmbedded allocates nil embedded pointers on the path to the Record,
// e.g. the *dto.Record of struct{ *dto.Record }.
func allocEmbedded(v reflect.Value) {
	if v.Kind() != reflect.Struct {
		return
	}
	for i := range v.NumField() {
		sf := v.Type().Field(i)
		if !sf.Anonymous || !sf.IsExported() {
			continue
		}
		f := v.Field(i)
		switch {
		case sf.Type == recordPtrType:
			if f.IsNil() {
				f.Set(reflect.New(sf.Type.Elem()))
			}
		case sf.Type.Kind() == reflect.Struct:
			allocEmbedded(f)
		case sf.Type.Kind() == reflect.Pointer && sf.Type.Implements(modelType):
			if f.IsNil() {
				f.Set(reflect.New(sf.Type.Elem()))
			}
			allocEmbedded(f.Elem())
		}
	}
}

func typeNameOf(m any) string {
	t := reflect.TypeOf(m)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return "Record"
	}
	return t.Name()
}
