package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

func TestInList(t *testing.T) {
	allowed := []string{"male", "female"}

	t.Run("accepts members", func(t *testing.T) {
		for _, value := range allowed {
			assert.NoError(t, validator.Apply(validator.InList("gender", value, allowed)))
		}
	})

	t.Run("is case-sensitive and exact", func(t *testing.T) {
		for _, value := range []string{"MALE", "Female", "male ", "", "other"} {
			err := validator.Apply(validator.InList("gender", value, allowed))
			require.Error(t, err, "value %q should be rejected", value)
			assert.Equal(t, "validation.in_list", validator.ExtractValidationErrors(err)[0].TranslationKey)
		}
	})

	t.Run("works with any comparable type", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.InList("n", 2, []int{1, 2, 3})))
		assert.Error(t, validator.Apply(validator.InList("n", 4, []int{1, 2, 3})))
	})

	t.Run("empty allow list rejects everything", func(t *testing.T) {
		assert.Error(t, validator.Apply(validator.InList("gender", "male", nil)))
	})
}
