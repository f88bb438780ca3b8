package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/dto"
	"github.com/dmitrymomot/dto/pkg/sanitizer"
	"github.com/dmitrymomot/dto/pkg/validator"
)

// Schema describes one generated record type.
//
//	package: users
//	type: Signup
//	fields:
//	  - name: email
//	    type: string
//	    rules: required|email
//	  - name: tags
//	    type: "[]string"
//	    rules: [array, "max:5"]
//
// Imports lists extra packages needed by field types such as uuid.UUID.
type Schema struct {
	Package string   `yaml:"package"`
	Type    string   `yaml:"type"`
	Doc     string   `yaml:"doc"`
	Imports []string `yaml:"imports"`
	Fields  []Field  `yaml:"fields"`
}

// Field is one attribute. Rules accepts a pipe-delimited string or a list.
type Field struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Rules any    `yaml:"rules"`
}

// ParseSchema decodes and checks a YAML schema.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Check reports schema problems: invalid identifiers, duplicate or
// colliding field names and malformed rules.
func (s *Schema) Check() error {
	var errs []error
	if !token.IsIdentifier(s.Package) {
		errs = append(errs, fmt.Errorf("%w: package %q is not an identifier", ErrInvalidSchema, s.Package))
	}
	if !token.IsIdentifier(s.Type) || !token.IsExported(s.Type) {
		errs = append(errs, fmt.Errorf("%w: type %q must be an exported identifier", ErrInvalidSchema, s.Type))
	}
	for _, imp := range s.Imports {
		if imp == "" || strings.ContainsAny(imp, "\" \t\n") {
			errs = append(errs, fmt.Errorf("%w: bad import path %q", ErrInvalidSchema, imp))
		}
	}
	if len(s.Fields) == 0 {
		errs = append(errs, fmt.Errorf("%w: no fields", ErrInvalidSchema))
	}

	var names, methods []string
	for _, f := range s.Fields {
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("%w: field without name", ErrInvalidSchema))
			continue
		}
		if slices.Contains(names, f.Name) {
			errs = append(errs, fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, f.Name))
		}
		names = append(names, f.Name)

		method := sanitizer.ToPascalCase(f.Name)
		if !token.IsIdentifier(method) {
			errs = append(errs, fmt.Errorf("%w: field %q has no Go name", ErrInvalidSchema, f.Name))
		} else if slices.Contains(methods, method) {
			errs = append(errs, fmt.Errorf("%w: fields collide on %s", ErrInvalidSchema, method))
		} else if shadowed := shadowedRecordMethods(method); len(shadowed) > 0 {
			errs = append(errs, fmt.Errorf("%w: field %q would hide dto.Record.%s", ErrInvalidSchema, f.Name, strings.Join(shadowed, ", dto.Record.")))
		}
		methods = append(methods, method)

		if _, err := validator.ParseRuleSpec(f.Rules); err != nil {
			errs = append(errs, fmt.Errorf("%w: field %q: %w", ErrInvalidSchema, f.Name, err))
		}
	}
	return errors.Join(errs...)
}

var recordMethods = func() map[string]bool {
	t := reflect.TypeFor[*dto.Record]()
	m := make(map[string]bool, t.NumMethod())
	for i := range t.NumMethod() {
		m[t.Method(i).Name] = true
	}
	return m
}()

// shadowedRecordMethods lists the Record methods hidden by the accessors
// generated for method.
func shadowedRecordMethods(method string) []string {
	var out []string
	for _, name := range []string{"Get" + method, "Set" + method} {
		if recordMethods[name] {
			out = append(out, name)
		}
	}
	return out
}

// Rules returns the schema's rule set.
func (s *Schema) Rules() (map[string]validator.RuleSpec, error) {
	m := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		m[f.Name] = f.Rules
	}
	return validator.ParseRules(m)
}
