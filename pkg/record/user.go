package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

// Validatable is implemented by Address and User.
type Validatable = validator.Validatable

// DateLayout is the only accepted date_of_birth format.
const DateLayout = "2006-01-02"

// User is a person record with the addresses it owns.
type User struct {
	// ID is opaque and never validated.
	ID          int64
	Email       string
	FullName    string
	Gender      string
	DateOfBirth *time.Time // nil when the record has no date of birth
	Addresses   []Address

	now func() time.Time
}

var _ Validatable = User{}

// WithClock returns a copy of u whose date-of-birth rule reads the current
// time from now. A nil now restores time.Now.
func (u User) WithClock(now func() time.Time) User {
	u.now = now
	return u
}

func (u User) clock() func() time.Time {
	if u.now == nil {
		return time.Now
	}
	return u.now
}

func (u User) rules() []validator.Rule {
	return []validator.Rule{
		emailRule(u.Email),
		fullNameRule(u.FullName),
		genderRule(u.Gender),
		dateOfBirthRule(u.DateOfBirth, u.clock()),
		addressesRule(u.Addresses),
	}
}

// Validate returns the failed rules as validator.ValidationErrors, or nil.
func (u User) Validate() error {
	return validator.Apply(u.rules()...)
}

func (u User) IsValid() bool {
	return u.Validate() == nil
}

// InvalidFields returns the failed field names in the order email,
// full_name, gender, date_of_birth, addresses. "addresses" is listed once
// when any owned address is invalid.
func (u User) InvalidFields() []string {
	return validator.FailedFields(u.rules()...)
}

// InvalidAddresses returns the indexes of invalid addresses.
func (u User) InvalidAddresses() []int {
	idx := []int{}
	for i, a := range u.Addresses {
		if !a.IsValid() {
			idx = append(idx, i)
		}
	}
	return idx
}

func (u User) String() string {
	dob := "<none>"
	if u.DateOfBirth != nil {
		dob = u.DateOfBirth.Format(DateLayout)
	}

	addrs := make([]string, 0, len(u.Addresses))
	for _, a := range u.Addresses {
		addrs = append(addrs, a.String())
	}

	return fmt.Sprintf("email: %s full name: %s gender: %s date of birth: %s addresses: [%s]",
		u.Email, u.FullName, u.Gender, dob, strings.Join(addrs, "; "))
}
