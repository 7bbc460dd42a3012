package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

func TestMatchesPattern(t *testing.T) {
	digits := regexp.MustCompile(`^[0-9]{3}$`)

	t.Run("valid values", func(t *testing.T) {
		for _, value := range []string{"000", "123", "999"} {
			err := validator.Apply(validator.MatchesPattern("code", value, digits, "3 digits"))
			assert.NoError(t, err, "value %q should match", value)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, value := range []string{"12", "1234", "12a", " 123", "abc"} {
			err := validator.Apply(validator.MatchesPattern("code", value, digits, "3 digits"))
			require.Error(t, err, "value %q should not match", value)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.Equal(t, "code", verrs[0].Field)
			assert.Equal(t, "must match 3 digits pattern", verrs[0].Message)
			assert.Equal(t, "validation.regex_pattern", verrs[0].TranslationKey)
		}
	})

	t.Run("blank values never match", func(t *testing.T) {
		anything := regexp.MustCompile(`.*`)
		for _, value := range []string{"", "   ", "\t"} {
			assert.Error(t, validator.Apply(validator.MatchesPattern("f", value, anything, "any")))
		}
	})

	t.Run("nil pattern never matches", func(t *testing.T) {
		assert.Error(t, validator.Apply(validator.MatchesPattern("f", "value", nil, "none")))
	})
}
