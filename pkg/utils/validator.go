package util

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var upperCase = regexp.MustCompile(`[A-Z]`)

func init() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("hasuppercase", validateHasUppercase)
}

func validateHasUppercase(fl validator.FieldLevel) bool {
	return upperCase.MatchString(fl.Field().String())
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

func ValidateStruct(s interface{}) []*ErrorResponse {
	var out []*ErrorResponse
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []*ErrorResponse{{Tag: "invalid", Msg: err.Error()}}
	}

	for _, err := range verrs {
		var element ErrorResponse
		element.Field = err.Field()
		element.Tag = err.Tag()

		switch err.Tag() {
		case "required":
			element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
		case "min":
			element.Msg = fmt.Sprintf("Field '%s' must be at least %s.", element.Field, err.Param())
		case "max":
			element.Msg = fmt.Sprintf("Field '%s' must be at most %s.", element.Field, err.Param())
		case "gt":
			element.Msg = fmt.Sprintf("Field '%s' must be greater than %s.", element.Field, err.Param())
		case "email":
			element.Msg = "Invalid email format."
		case "hasuppercase":
			element.Msg = "Password must contain at least one uppercase letter."
		case "datetime":
			element.Msg = fmt.Sprintf("Field '%s' must match the layout %s.", element.Field, err.Param())
		case "uuid":
			element.Msg = fmt.Sprintf("Field '%s' must be a UUID.", element.Field)
		case "oneof":
			element.Msg = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, err.Param())
		default:
			element.Msg = fmt.Sprintf("Field '%s' failed validation on tag '%s'.", element.Field, element.Tag)
		}
		out = append(out, &element)
	}
	return out
}
