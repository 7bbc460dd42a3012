package validator

// Validatable is implemented by any value that can judge its own fields.
type Validatable interface {
	// IsValid reports whether every field rule passes.
	IsValid() bool
	// InvalidFields returns the names of the failed fields in a stable order.
	InvalidFields() []string
}

// Valid validates that every item is itself valid. No items is valid.
func Valid[T Validatable](field string, items ...T) Rule {
	return Rule{
		Check: func() bool {
			for _, item := range items {
				if !item.IsValid() {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "contains invalid entries",
			TranslationKey: "validation.nested",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
