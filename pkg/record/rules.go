package record

import (
	"regexp"
	"time"

	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

// Canonical field names, in declaration order.
const (
	FieldCountry    = "country"
	FieldCity       = "city"
	FieldPostalCode = "postal_code"

	FieldEmail       = "email"
	FieldFullName    = "full_name"
	FieldGender      = "gender"
	FieldDateOfBirth = "date_of_birth"
	FieldAddresses   = "addresses"
)

var (
	placeNameRe  = regexp.MustCompile(`^\p{Lu}\p{Ll}+$`)
	postalCodeRe = regexp.MustCompile(`^[0-9]{5}$`)
	emailRe      = regexp.MustCompile(`^\w{2,}@[A-Za-z]{2,}\.[A-Za-z]{2,}$`)
	fullNameRe   = regexp.MustCompile(`^\p{L}+\s\p{L}+$`)

	// Genders lists the accepted gender values. Matching is case-sensitive.
	Genders = []string{"male", "female"}
)

func countryRule(v string) validator.Rule {
	return validator.MatchesPattern(FieldCountry, v, placeNameRe, "capitalized word")
}

func cityRule(v string) validator.Rule {
	return validator.MatchesPattern(FieldCity, v, placeNameRe, "capitalized word")
}

func postalCodeRule(v string) validator.Rule {
	return validator.MatchesPattern(FieldPostalCode, v, postalCodeRe, "5 digit postal code")
}

func emailRule(v string) validator.Rule {
	return validator.MatchesPattern(FieldEmail, v, emailRe, "email")
}

func fullNameRule(v string) validator.Rule {
	return validator.MatchesPattern(FieldFullName, v, fullNameRe, "first and last name")
}

func genderRule(v string) validator.Rule {
	return validator.InList(FieldGender, v, Genders)
}

func dateOfBirthRule(v *time.Time, now func() time.Time) validator.Rule {
	return validator.PastDate(FieldDateOfBirth, v, now)
}

func addressesRule(v []Address) validator.Rule {
	return validator.Valid(FieldAddresses, v...)
}

func check(rule validator.Rule) bool {
	return validator.Apply(rule) == nil
}

// IsCountryValid reports whether v is one capital letter followed by one or
// more lowercase letters.
func IsCountryValid(v string) bool { return check(countryRule(v)) }

// IsCityValid applies the same rule as IsCountryValid.
func IsCityValid(v string) bool { return check(cityRule(v)) }

// IsPostalCodeValid reports whether v is exactly five decimal digits.
func IsPostalCodeValid(v string) bool { return check(postalCodeRule(v)) }

// IsEmailValid reports whether v looks like local@domain.tld, where local has
// at least two word characters and domain and tld at least two letters each.
func IsEmailValid(v string) bool { return check(emailRule(v)) }

// IsFullNameValid reports whether v is two alphabetic words separated by a
// single whitespace character.
func IsFullNameValid(v string) bool { return check(fullNameRule(v)) }

// IsGenderValid reports whether v is one of Genders.
func IsGenderValid(v string) bool { return check(genderRule(v)) }

// IsDateOfBirthValid reports whether v is present and strictly before the
// calendar date returned by now. A nil now uses time.Now.
func IsDateOfBirthValid(v *time.Time, now func() time.Time) bool {
	return check(dateOfBirthRule(v, now))
}

// AreAddressesValid reports whether every address is valid. An empty slice is valid.
func AreAddressesValid(v []Address) bool { return check(addressesRule(v)) }
