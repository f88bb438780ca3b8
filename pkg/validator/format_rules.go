package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	alphaRegex        = regexp.MustCompile(`^\pL+$`)
	alphanumericRegex = regexp.MustCompile(`^[\pL\pN]+$`)
	alphaDashRegex    = regexp.MustCompile(`^[\pL\pN_-]+$`)
)

// ValidEmail validates that a string is a valid email address using RFC 5322,
// additionally requiring a dotted domain.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Error: newError(field, "validation.email", "must be a valid email address", nil),
	}
}

// ValidURL validates that a string is an absolute URL with scheme and host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			u, err := url.ParseRequestURI(strings.TrimSpace(value))
			if err != nil {
				return false
			}
			return u.Scheme != "" && u.Host != ""
		},
		Error: newError(field, "validation.url", "must be a valid URL", nil),
	}
}

// ValidUUID validates the canonical 36 character UUID form.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) != 36 {
				return false
			}
			if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}
			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: newError(field, "validation.uuid", "must be a valid UUID", nil),
	}
}

// MatchesRegex validates against a compiled pattern.
func MatchesRegex(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: newError(field, "validation.regex", "format is invalid",
			map[string]any{"pattern": re.String()}),
	}
}

// stringRule adapts a string rule to untyped input: non-string values fail
// with the rule's own error.
func stringRule(f Field, build func(field, value string) Rule) Rule {
	s, ok := f.Value.(string)
	rule := build(f.Name, s)
	if !ok {
		return failing(rule.Error)
	}
	return rule
}

func emailConstraint(f Field) Rule { return stringRule(f, ValidEmail) }
func urlConstraint(f Field) Rule   { return stringRule(f, ValidURL) }

func uuidConstraint(f Field) Rule {
	if id, ok := f.Value.(uuid.UUID); ok {
		return ValidUUID(f.Name, id.String())
	}
	return stringRule(f, ValidUUID)
}

func alphaConstraint(f Field) Rule {
	return stringRule(f, func(field, value string) Rule {
		return Rule{
			Check: func() bool { return alphaRegex.MatchString(value) },
			Error: newError(field, "validation.alpha", "must contain only letters", nil),
		}
	})
}

func alphaNumConstraint(f Field) Rule {
	return stringRule(f, func(field, value string) Rule {
		return Rule{
			Check: func() bool { return alphanumericRegex.MatchString(value) },
			Error: newError(field, "validation.alpha_num", "must contain only letters and numbers", nil),
		}
	})
}

func alphaDashConstraint(f Field) Rule {
	return stringRule(f, func(field, value string) Rule {
		return Rule{
			Check: func() bool { return alphaDashRegex.MatchString(value) },
			Error: newError(field, "validation.alpha_dash",
				"must contain only letters, numbers, dashes and underscores", nil),
		}
	})
}

func compilePattern(f Field, name string) (*regexp.Regexp, Rule, bool) {
	if len(f.Params) != 1 {
		return nil, invalidParams(f, name), false
	}
	// Accept PHP-style delimiters: "/^[a-z]+$/".
	pattern := f.Params[0]
	if len(pattern) >= 2 && strings.HasPrefix(pattern, "/") && strings.HasSuffix(pattern, "/") {
		pattern = pattern[1 : len(pattern)-1]
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, invalidParams(f, name), false
	}
	return re, Rule{}, true
}

func regexConstraint(f Field) Rule {
	re, bad, ok := compilePattern(f, "regex")
	if !ok {
		return bad
	}
	return stringRule(f, func(field, value string) Rule {
		return MatchesRegex(field, value, re)
	})
}

func notRegexConstraint(f Field) Rule {
	re, bad, ok := compilePattern(f, "not_regex")
	if !ok {
		return bad
	}
	return stringRule(f, func(field, value string) Rule {
		return Rule{
			Check: func() bool { return !re.MatchString(value) },
			Error: newError(field, "validation.not_regex", fmt.Sprintf("must not match %s", re), map[string]any{"pattern": re.String()}),
		}
	})
}
