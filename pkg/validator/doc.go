// Package validator provides a small, composable rule engine used to judge
// the fields of typed records.
//
// A Rule couples a deferred boolean Check with the ValidationError reported
// when the check fails. Rules are evaluated with Apply, which runs every rule
// in order (no short-circuit) and aggregates the failures into a
// ValidationErrors slice that satisfies the error interface.
//
// # Architecture
//
// Each source file groups one family of rule constructors:
//   - pattern.go – MatchesPattern, full match against a precompiled regexp
//   - choice.go  – InList, exact membership in a fixed set
//   - date.go    – PastDate, calendar comparison against an injected clock
//   - nested.go  – Valid, conjunction over child Validatable values
//
// Every constructor captures its inputs and returns a Rule. Rules hold no
// shared state and can be evaluated from multiple goroutines.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.MatchesPattern("postal_code", a.PostalCode, postalRe, "5 digits"),
//	    validator.InList("gender", u.Gender, []string{"male", "female"}),
//	    validator.PastDate("date_of_birth", u.DateOfBirth, time.Now),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    fmt.Println(verrs.Fields())
//	}
//
// FailedFields is a shortcut for the common case where only the failed field
// names matter.
//
// # Error Handling
//
// Validation failures are values. ValidationErrors matches ErrValidationFailed
// through errors.Is and can be recovered with errors.As or
// ExtractValidationErrors.
package validator
