package validator

import (
	"reflect"
	"strings"

	"journal-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidators()
}

func registerCustomValidators() {
	// "mood" accepts only members of the closed mood enumeration.
	validate.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		_, err := models.ParseMood(fl.Field().String())
		return err == nil
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func GetValidator() *validator.Validate {
	return validate
}
