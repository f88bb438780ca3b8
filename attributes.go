package dto

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/dto/pkg/validator"
)

// Get returns the attribute value, or nil when it was never set.
// Use Has to tell an unset attribute from one set to nil.
func (r *Record) Get(name string) any {
	return r.attributes[name]
}

// Lookup returns the attribute value and whether it was set.
func (r *Record) Lookup(name string) (any, bool) {
	v, ok := r.attributes[name]
	return v, ok
}

// GetRequired returns the attribute value or an *AttributeNotFoundError.
// An attribute set to nil is found.
func (r *Record) GetRequired(name string) (any, error) {
	v, ok := r.attributes[name]
	if !ok {
		return nil, &AttributeNotFoundError{Type: r.TypeName(), Name: name}
	}
	return v, nil
}

// Set stores value under name, replacing any previous value, and returns the
// record for chaining.
func (r *Record) Set(name string, value any) *Record {
	if r.attributes == nil {
		r.attributes = make(map[string]any)
	}
	r.attributes[name] = value
	return r
}

// Unset removes the attribute.
func (r *Record) Unset(name string) *Record {
	delete(r.attributes, name)
	return r
}

// Has reports whether the attribute was set, even to nil.
func (r *Record) Has(name string) bool {
	_, ok := r.attributes[name]
	return ok
}

// HasNonNull reports whether the attribute was set to a non-nil value.
// Typed nils (a nil *T, map or slice) count as nil.
func (r *Record) HasNonNull(name string) bool {
	v, ok := r.attributes[name]
	return ok && !validator.IsNil(v)
}

// Keys returns the attribute names in sorted order.
func (r *Record) Keys() []string {
	return slices.Sorted(maps.Keys(r.attributes))
}

// Len returns the number of attributes.
func (r *Record) Len() int {
	return len(r.attributes)
}

// Attributes returns a shallow copy of the attribute map.
func (r *Record) Attributes() map[string]any {
	if r.attributes == nil {
		return map[string]any{}
	}
	return maps.Clone(r.attributes)
}
