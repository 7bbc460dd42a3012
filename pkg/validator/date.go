package validator

import "time"

// PastDate validates that the calendar date of value is strictly before the
// calendar date of now(). A nil value fails, and so does today's date.
// now is read at Check time, so the same rule can flip across midnight.
func PastDate(field string, value *time.Time, now func() time.Time) Rule {
	if now == nil {
		now = time.Now
	}
	return Rule{
		Check: func() bool {
			if value == nil {
				return false
			}
			return DateOnly(*value).Before(DateOnly(now()))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "date must be in the past",
			TranslationKey: "validation.date_past",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// DateOnly drops the clock part of t, keeping its calendar date in its own
// location, and returns that date as midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
