package record_test

import (
	"time"

	"github.com/dmitrymomot/recordcheck/pkg/record"
)

func fixedNow(year int, month time.Month, day int) func() time.Time {
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func validAddress() record.Address {
	return record.Address{Country: "Ukraine", City: "Kyiv", PostalCode: "01001"}
}

func validUser() record.User {
	return record.User{
		ID:          1,
		Email:       "valerabig4len@ukr.net",
		FullName:    "Valera Zmyshenko",
		Gender:      "male",
		DateOfBirth: date(1975, time.August, 15),
		Addresses: []record.Address{
			validAddress(),
			{Country: "Ukraine", City: "Zhytomyr", PostalCode: "01488"},
		},
	}.WithClock(fixedNow(2024, time.June, 15))
}

func baseRecord() map[string]any {
	return map[string]any{
		"id":            float64(1),
		"email":         "valerabig4len@ukr.net",
		"full_name":     "Valera Zmyshenko",
		"gender":        "male",
		"date_of_birth": "1975-08-15",
		"addresses": []any{
			map[string]any{"country": "Ukraine", "city": "Kyiv", "postal_code": "01001"},
			map[string]any{"country": "Ukraine", "city": "Zhytomyr", "postal_code": "01488"},
		},
	}
}
