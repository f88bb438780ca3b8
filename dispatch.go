package dto

import (
	"unicode"
	"unicode/utf8"
)

const (
	getterPrefix = "get"
	setterPrefix = "set"
)

// Call dispatches a dynamic accessor name. "getFirstName" returns the
// "first_name" attribute (GetRequired semantics), "setFirstName" with one
// argument assigns it and returns the record so calls can be chained:
//
//	rec.Call("setFirst", "Hello")
//	v, err := rec.Call("getFirst") // "Hello", nil
//
// The accessor suffix must start with a letter or a digit, so "getfirst"
// reads "first" as well. Any other name, or a wrong argument count, yields a
// *MethodNotFoundError.
func (r *Record) Call(method string, args ...any) (any, error) {
	if name, ok := r.accessorName(method, getterPrefix); ok && len(args) == 0 {
		return r.GetRequired(name)
	}
	if name, ok := r.accessorName(method, setterPrefix); ok && len(args) == 1 {
		return r.Set(name, args[0]), nil
	}
	return nil, &MethodNotFoundError{Type: r.TypeName(), Method: method}
}

// MustCall is like Call but panics on error.
func (r *Record) MustCall(method string, args ...any) any {
	v, err := r.Call(method, args...)
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Record) accessorName(method, prefix string) (string, bool) {
	if len(method) <= len(prefix) || method[:len(prefix)] != prefix {
		return "", false
	}
	suffix := method[len(prefix):]
	first, _ := utf8.DecodeRuneInString(suffix)
	if !unicode.IsLetter(first) && !unicode.IsDigit(first) {
		return "", false
	}
	name := r.convertName(suffix)
	return name, name != ""
}
