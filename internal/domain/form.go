package domain

// Field is a named form input.
type Field struct {
	Name  string
	Value string
}

// missingFields returns the names of the fields whose value is empty, in the
// order they were declared. Whitespace counts as filled.
func missingFields(fields ...Field) []string {
	var missing []string
	for _, f := range fields {
		if f.Value == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// RequireFields returns a ValidationError naming every empty field, or nil.
func RequireFields(fields ...Field) error {
	if missing := missingFields(fields...); len(missing) > 0 {
		return newValidationError("required fields are empty", missing...)
	}
	return nil
}
