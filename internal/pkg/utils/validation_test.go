package utils

import (
	"daily-journal-service/internal/pkg/dto/requests"
	"daily-journal-service/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	t.Run("Valid Save Entry", func(t *testing.T) {
		request := &requests.SaveEntry{
			Content:   "ran 5k",
			EntryDate: "2024-01-15",
			Category:  "exercise",
		}
		assert.NoError(t, ValidateStruct(request), "valid request should pass")
	})

	t.Run("Unknown Category", func(t *testing.T) {
		request := &requests.SaveEntry{
			Content:   "ran 5k",
			EntryDate: "2024-01-15",
			Category:  "sleep",
		}
		err := ValidateStruct(request)
		assert.Error(t, err, "unknown category should fail")
		assert.Equal(t, "category must be one of [learning, exercise, mindfulness]", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Blank Content", func(t *testing.T) {
		request := &requests.SaveEntry{
			Content:   "   ",
			EntryDate: "2024-01-15",
			Category:  "learning",
		}
		err := ValidateStruct(request)
		assert.Error(t, err, "blank content should fail")
		assert.Equal(t, "content must not be blank", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Content Too Long", func(t *testing.T) {
		request := &requests.SaveEntry{
			Content:   strings.Repeat("a", 5001),
			EntryDate: "2024-01-15",
			Category:  "learning",
		}
		err := ValidateStruct(request)
		assert.Error(t, err, "oversized content should fail")
		assert.Equal(t, "content maximum at 5000 characters long", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Malformed Date", func(t *testing.T) {
		request := &requests.SaveEntry{
			Content:   "stretching",
			EntryDate: "2024-1-15",
			Category:  "exercise",
		}
		err := ValidateStruct(request)
		assert.Error(t, err, "unpadded date should fail")
		assert.Equal(t, "entrydate must be a date in YYYY-MM-DD format", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Weak Password", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:       "rina@example.com",
			Password:    "password",
			DisplayName: "Rina",
		}
		err := ValidateStruct(request)
		assert.Error(t, err, "password without uppercase and special char should fail")
	})

	t.Run("Strong Password", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:       "rina@example.com",
			Password:    "Secr3t!pass",
			DisplayName: "Rina",
		}
		assert.NoError(t, ValidateStruct(request))
	})
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("learning"))
	assert.True(t, IsValidCategory("exercise"))
	assert.True(t, IsValidCategory("mindfulness"))
	assert.False(t, IsValidCategory("Learning"), "categories are case sensitive")
	assert.False(t, IsValidCategory(""))
}
