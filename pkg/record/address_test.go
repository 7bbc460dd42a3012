package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordcheck/pkg/record"
	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

func TestAddress_Valid(t *testing.T) {
	a := record.Address{Country: "Ukraine", City: "Kyiv", PostalCode: "10101"}

	assert.True(t, a.IsValid())
	fields := a.InvalidFields()
	require.NotNil(t, fields)
	assert.Empty(t, fields)
	assert.NoError(t, a.Validate())
}

func TestAddress_Invalid(t *testing.T) {
	t.Run("reports every invalid field in canonical order", func(t *testing.T) {
		a := record.Address{Country: "ukraine", City: "kyiv", PostalCode: "abc"}

		assert.False(t, a.IsValid())
		assert.Equal(t, []string{"country", "city", "postal_code"}, a.InvalidFields())
	})

	t.Run("constructible with invalid data", func(t *testing.T) {
		a := record.Address{Country: "ukraine", City: "kyiv", PostalCode: "abc"}
		assert.Equal(t, "ukraine", a.Country)
		assert.Equal(t, "kyiv", a.City)
		assert.Equal(t, "abc", a.PostalCode)
	})

	t.Run("single invalid city", func(t *testing.T) {
		a := record.Address{Country: "Ukraine", City: "kyiv", PostalCode: "11111"}
		assert.False(t, a.IsValid())
		assert.Equal(t, []string{"city"}, a.InvalidFields())
	})

	t.Run("invalid postal codes", func(t *testing.T) {
		for _, v := range []string{"-3434", "234234", "abcosdf"} {
			a := record.Address{Country: "Ukraine", City: "Kyiv", PostalCode: v}
			assert.False(t, a.IsValid(), v)
			assert.Contains(t, a.InvalidFields(), "postal_code", v)
		}
	})

	t.Run("empty address fails every rule without panicking", func(t *testing.T) {
		var a record.Address
		assert.Equal(t, []string{"country", "city", "postal_code"}, a.InvalidFields())
	})

	t.Run("validate exposes messages", func(t *testing.T) {
		a := record.Address{Country: "Ukraine", City: "Kyiv", PostalCode: "1001"}
		verrs := validator.ExtractValidationErrors(a.Validate())
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"must match 5 digit postal code pattern"}, verrs.Get("postal_code"))
	})
}

func TestAddress_ValidityMatchesInvalidFields(t *testing.T) {
	addresses := []record.Address{
		{},
		validAddress(),
		{Country: "Ukraine", City: "Kyiv", PostalCode: "0100"},
		{Country: "UKRAINE", City: "Kyiv", PostalCode: "01001"},
		{Country: "Ukraine", City: "", PostalCode: "01001"},
	}
	for _, a := range addresses {
		assert.Equal(t, a.IsValid(), len(a.InvalidFields()) == 0, a.String())
		assert.Equal(t, a.InvalidFields(), a.InvalidFields(), "idempotent")
	}
}

func TestAddress_ReflectsCurrentValues(t *testing.T) {
	a := validAddress()
	require.True(t, a.IsValid())

	a.City = "kyiv"
	assert.False(t, a.IsValid())
	assert.Equal(t, []string{"city"}, a.InvalidFields())
}

func TestAddress_String(t *testing.T) {
	assert.Equal(t, "Ukraine, Kyiv 01001", validAddress().String())
}
