package validator

import (
	"github.com/go-playground/validator/v10"
)

// BVN and NIN are Nigerian identity numbers, both exactly 11 digits.

func registerCustomRules(v *validator.Validate) {
	_ = v.RegisterValidation("bvn", elevenDigits)
	_ = v.RegisterValidation("nin", elevenDigits)
}

func elevenDigits(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 11 {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
