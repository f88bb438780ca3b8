package validator

// requiredConstraint fails for absent attributes, nil, blank strings and
// empty collections.
func requiredConstraint(f Field) Rule {
	return Rule{
		Check: func() bool {
			return f.Present && !isEmpty(f.Value)
		},
		Error: newError(f.Name, "validation.required", "field is required", nil),
	}
}

// presentConstraint only needs the key to exist; the value may be empty.
func presentConstraint(f Field) Rule {
	return Rule{
		Check: func() bool {
			return f.Present
		},
		Error: newError(f.Name, "validation.present", "field must be present", nil),
	}
}

// filledConstraint allows the attribute to be absent but not empty when set.
func filledConstraint(f Field) Rule {
	return Rule{
		Check: func() bool {
			return !f.Present || !isEmpty(f.Value)
		},
		Error: newError(f.Name, "validation.filled", "field must not be empty", nil),
	}
}

func acceptedConstraint(f Field) Rule {
	return Rule{
		Check: func() bool {
			return f.Present && isAccepted(f.Value)
		},
		Error: newError(f.Name, "validation.accepted", "must be accepted", nil),
	}
}
