package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// RuleSpec is the list of constraints declared for one attribute,
// e.g. Spec("required|string|max:255").
type RuleSpec []string

// Spec parses a pipe-delimited constraint expression.
func Spec(expr string) RuleSpec {
	var out RuleSpec
	for part := range strings.SplitSeq(expr, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseRuleSpec accepts a pipe-delimited string, a list of strings or a list
// of arbitrary values holding strings (as produced by JSON and YAML decoders).
func ParseRuleSpec(v any) (RuleSpec, error) {
	switch spec := v.(type) {
	case RuleSpec:
		return spec, nil
	case string:
		return Spec(spec), nil
	case []string:
		return normalizeList(spec), nil
	case []any:
		list := make([]string, 0, len(spec))
		for i, item := range spec {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T, expected string", ErrInvalidRuleSpec, i, item)
			}
			list = append(list, s)
		}
		return normalizeList(list), nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidRuleSpec, v)
	}
}

// ParseRules converts an untyped field → spec map, e.g. one decoded from YAML.
func ParseRules(m map[string]any) (map[string]RuleSpec, error) {
	out := make(map[string]RuleSpec, len(m))
	for field, raw := range m {
		spec, err := ParseRuleSpec(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		out[field] = spec
	}
	return out, nil
}

// Rules builds a rule map from pipe-delimited expressions.
func Rules(m map[string]string) map[string]RuleSpec {
	out := make(map[string]RuleSpec, len(m))
	for field, expr := range m {
		out[field] = Spec(expr)
	}
	return out
}

// Has reports whether s contains a constraint with the given name,
// ignoring parameters ("max:10" has "max").
func (s RuleSpec) Has(name string) bool {
	return slices.ContainsFunc(s, func(c string) bool {
		n, _ := ParseConstraint(c)
		return n == name
	})
}

func (s RuleSpec) String() string {
	return strings.Join(s, "|")
}

// CloneRules returns a deep copy of a rule map.
func CloneRules(rules map[string]RuleSpec) map[string]RuleSpec {
	if rules == nil {
		return nil
	}
	out := maps.Clone(rules)
	for field, spec := range out {
		out[field] = slices.Clone(spec)
	}
	return out
}

// ParseConstraint splits "between:1,10" into its name and parameters.
// Parameters of regex and date_format are kept whole since they may contain commas.
func ParseConstraint(c string) (string, []string) {
	name, rest, found := strings.Cut(strings.TrimSpace(c), ":")
	name = strings.ToLower(strings.TrimSpace(name))
	if !found {
		return name, nil
	}
	switch name {
	case "regex", "not_regex", "date_format":
		return name, []string{rest}
	}
	var params []string
	for p := range strings.SplitSeq(rest, ",") {
		params = append(params, strings.TrimSpace(p))
	}
	return name, params
}

func normalizeList(list []string) RuleSpec {
	out := make(RuleSpec, 0, len(list))
	for _, c := range list {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
