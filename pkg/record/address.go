package record

import (
	"fmt"

	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

// Address is a postal address owned by a User.
type Address struct {
	Country    string
	City       string
	PostalCode string
}

var _ Validatable = Address{}

func (a Address) rules() []validator.Rule {
	return []validator.Rule{
		countryRule(a.Country),
		cityRule(a.City),
		postalCodeRule(a.PostalCode),
	}
}

// Validate returns the failed rules as validator.ValidationErrors, or nil.
func (a Address) Validate() error {
	return validator.Apply(a.rules()...)
}

func (a Address) IsValid() bool {
	return a.Validate() == nil
}

// InvalidFields returns the failed field names in the order
// country, city, postal_code.
func (a Address) InvalidFields() []string {
	return validator.FailedFields(a.rules()...)
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s %s", a.Country, a.City, a.PostalCode)
}
