package codegen

import (
	"bytes"
	"errors"
	"go/format"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/dmitrymomot/dto/pkg/sanitizer"
	"github.com/dmitrymomot/dto/pkg/validator"
)

// accessor describes how a Go type is read from a record.
type accessor struct {
	goType string
	getter string
}

var accessors = map[string]accessor{
	"":        {goType: "any", getter: "GetRequired"},
	"any":     {goType: "any", getter: "GetRequired"},
	"string":  {goType: "string", getter: "GetString"},
	"bool":    {goType: "bool", getter: "GetBool"},
	"int":     {goType: "int64", getter: "GetInt"},
	"int64":   {goType: "int64", getter: "GetInt"},
	"integer": {goType: "int64", getter: "GetInt"},
	"float":   {goType: "float64", getter: "GetFloat"},
	"float64": {goType: "float64", getter: "GetFloat"},
	"number":  {goType: "float64", getter: "GetFloat"},
}

type fieldData struct {
	Name   string
	Method string
	GoType string
	Getter string
	Rules  string
}

type templateData struct {
	Package  string
	Type     string
	Doc      string
	Receiver string
	Imports  []string
	Fields   []fieldData
}

var fileTemplate = template.Must(template.New("record").Parse(`// Code generated by dtoctl; DO NOT EDIT.

package {{.Package}}

import (
	"github.com/dmitrymomot/dto"
	"github.com/dmitrymomot/dto/pkg/validator"
{{- range .Imports}}
	{{printf "%q" .}}
{{- end}}
)

{{if .Doc}}// {{.Type}} {{.Doc}}{{else}}// {{.Type}} is a generated dto record.{{end}}
type {{.Type}} struct {
	dto.Record
}

// New{{.Type}} returns an empty {{.Type}} with its default rules.
func New{{.Type}}(opts ...dto.Option) *{{.Type}} {
	return dto.New[*{{.Type}}](opts...)
}

// {{.Type}}FromMap builds a {{.Type}} from untyped input.
func {{.Type}}FromMap(data map[string]any, opts ...dto.Option) *{{.Type}} {
	return dto.FromMap[*{{.Type}}](data, opts...)
}

func (*{{.Type}}) DefaultRules() map[string]validator.RuleSpec {
	return map[string]validator.RuleSpec{
{{- range .Fields}}{{if .Rules}}
		{{printf "%q" .Name}}: {{.Rules}},{{end}}{{end}}
	}
}
{{range .Fields}}{{$r := $.Receiver}}
// Get{{.Method}} returns the {{printf "%q" .Name}} attribute.
func ({{$r}} *{{$.Type}}) Get{{.Method}}() ({{.GoType}}, error) {
{{- if eq .Getter "Value"}}
	return dto.Value[{{.GoType}}]({{$r}}, {{printf "%q" .Name}})
{{- else}}
	return {{$r}}.Record.{{.Getter}}({{printf "%q" .Name}})
{{- end}}
}

// Set{{.Method}} assigns the {{printf "%q" .Name}} attribute.
func ({{$r}} *{{$.Type}}) Set{{.Method}}(value {{.GoType}}) *{{$.Type}} {
	{{$r}}.Set({{printf "%q" .Name}}, value)
	return {{$r}}
}
{{end}}`))

// Generate renders gofmt-ed Go source for the schema: a type embedding
// dto.Record with DefaultRules and a typed getter and setter per field.
func Generate(s *Schema) ([]byte, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}

	data := templateData{
		Package:  s.Package,
		Type:     s.Type,
		Doc:      strings.Join(strings.Fields(s.Doc), " "),
		Receiver: receiverName(s.Type),
		Imports:  s.Imports,
	}
	for _, f := range s.Fields {
		spec, err := validator.ParseRuleSpec(f.Rules)
		if err != nil {
			return nil, errors.Join(ErrGenerate, err)
		}

		acc, ok := accessors[f.Type]
		if !ok {
			acc = accessor{goType: f.Type, getter: "Value"}
		}
		data.Fields = append(data.Fields, fieldData{
			Name:   f.Name,
			Method: sanitizer.ToPascalCase(f.Name),
			GoType: acc.goType,
			Getter: acc.getter,
			Rules:  specLiteral(spec),
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	return src, nil
}

func specLiteral(spec validator.RuleSpec) string {
	if len(spec) == 0 {
		return ""
	}
	quoted := make([]string, len(spec))
	for i, c := range spec {
		quoted[i] = strconv.Quote(c)
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}

func receiverName(typeName string) string {
	for _, r := range typeName {
		return string(unicode.ToLower(r))
	}
	return "r"
}
