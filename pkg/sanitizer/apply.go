package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable pipeline, e.g. a key converter handed to a record:
//
//	conv := sanitizer.Compose(sanitizer.Trim, sanitizer.ToSnakeCase)
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
