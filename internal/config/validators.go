package config

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// registerMinChars adds a custom validator requiring a string field to hold at least
// as many characters as the integer field named by the tag parameter.
func registerMinChars(validate *validator.Validate) error {
	if err := validate.RegisterValidation("minchars", validateMinChars); err != nil {
		return fmt.Errorf("registering minchars validation: %w", err)
	}

	return nil
}

// validateMinChars counts runes, not bytes, so a multi-byte passphrase is measured
// the way it was typed.
func validateMinChars(fl validator.FieldLevel) bool {
	field := fl.Field()
	limit := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !limit.IsValid() {
		return true
	}

	if field.Kind() != reflect.String || limit.Kind() != reflect.Int {
		return true
	}

	return int64(utf8.RuneCountInString(field.String())) >= limit.Int()
}
