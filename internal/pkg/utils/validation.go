package utils

import (
	"daily-journal-service/internal/pkg/constvars"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	specialCharRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("entry_category", validateEntryCategory)
	validate.RegisterValidation("not_blank", validateNotBlank)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func IsValidCategory(category string) bool {
	for _, c := range constvars.EntryCategories {
		if c == category {
			return true
		}
	}
	return false
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := specialCharRegex.MatchString(password)
	hasUppercase := uppercaseRegex.MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateEntryCategory(fl validator.FieldLevel) bool {
	return IsValidCategory(fl.Field().String())
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
