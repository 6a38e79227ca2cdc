package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("sport", validateSport)
	validate.RegisterValidation("ticket_category", validateTicketCategory)
	validate.RegisterValidation("payment_method", validatePaymentMethod)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationErrors flattens validator.ValidationErrors into the field→message
// map the error envelope carries.
func ValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["request"] = err.Error()
		return errors
	}

	for _, fieldError := range validationErrors {
		field := strings.ToLower(fieldError.Field())
		switch fieldError.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required", field)
		case "email":
			errors[field] = "must be a valid email address"
		case "min":
			errors[field] = fmt.Sprintf("must be at least %s", fieldError.Param())
		case "max":
			errors[field] = fmt.Sprintf("cannot exceed %s", fieldError.Param())
		case "sport":
			errors[field] = "must be a valid sport"
		case "ticket_category":
			errors[field] = "must be a valid ticket category"
		case "payment_method":
			errors[field] = "must be a valid payment method"
		case "gtfield":
			errors[field] = fmt.Sprintf("must be after %s", strings.ToLower(fieldError.Param()))
		default:
			errors[field] = fmt.Sprintf("failed validation on %s", fieldError.Tag())
		}
	}

	return errors
}

var sports = []string{"football", "cricket", "basketball", "baseball", "soccer", "tennis", "other"}
var ticketCategories = []string{"bleachers", "vip", "premium", "box"}
var paymentMethods = []string{"credit_card", "debit_card", "paypal", "bank_transfer"}

func validateSport(fl validator.FieldLevel) bool {
	return contains(sports, fl.Field().String())
}

func validateTicketCategory(fl validator.FieldLevel) bool {
	return contains(ticketCategories, fl.Field().String())
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return contains(paymentMethods, fl.Field().String())
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
