package exceptions

import (
	"daily-journal-service/internal/pkg/constvars"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNewCustomError(t *testing.T) {
	t.Run("Wraps Plain Error", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := ErrMongoDBFindDocument(cause)

		assert.Equal(t, constvars.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, err.ClientMessage)
		assert.Equal(t, constvars.ErrDevDBFailedToFindDocument+": connection refused", err.DevMessage)
		assert.True(t, errors.Is(err, cause), "cause should be reachable through Unwrap")
		require.Len(t, err.Locations, 1)
		assert.True(t, strings.HasSuffix(err.Locations[0].File, "error_test.go"), "location should point at the caller, got %s", err.Locations[0].File)
	})

	t.Run("Nil Cause", func(t *testing.T) {
		err := ErrEntryNotExist(nil)

		assert.Equal(t, constvars.StatusNotFound, err.StatusCode)
		assert.Equal(t, constvars.ErrDevEntryNotExists, err.DevMessage)
		assert.Nil(t, err.Unwrap())
	})

	t.Run("Nested Custom Error Keeps Locations", func(t *testing.T) {
		inner := ErrRedisGet(errors.New("timeout"))
		outer := ErrTokenInvalid(inner)

		assert.Equal(t, constvars.StatusUnauthorized, outer.StatusCode)
		assert.Len(t, outer.Locations, 2, "outer error should carry both call sites")
		assert.Contains(t, outer.DevMessage, constvars.ErrDevRedisGetData)
	})
}

type sample struct {
	Category string `validate:"oneof=learning exercise"`
	Name     string `validate:"min=3"`
}

func TestFormatFirstValidationError(t *testing.T) {
	v := validator.New()

	t.Run("Oneof Lists Options", func(t *testing.T) {
		err := v.Struct(sample{Category: "sleep", Name: "abc"})
		assert.Equal(t, "category must be one of [learning, exercise]", FormatFirstValidationError(err))
	})

	t.Run("Min Uses Param", func(t *testing.T) {
		err := v.Struct(sample{Category: "learning", Name: "a"})
		assert.Equal(t, "name must be at least 3 characters long", FormatFirstValidationError(err))
	})

	t.Run("Non Validation Error", func(t *testing.T) {
		assert.Equal(t, constvars.ErrDevInvalidInput, FormatFirstValidationError(errors.New("x")))
	})
}
