// Package errors provides structured error handling for the storefront.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Validation errors
	CodeValidationMissingField  Code = "VALIDATION_MISSING_FIELD"
	CodeValidationEmailFormat   Code = "VALIDATION_EMAIL_FORMAT"
	CodeValidationPhoneFormat   Code = "VALIDATION_PHONE_FORMAT"
	CodeValidationPasswordShort Code = "VALIDATION_PASSWORD_SHORT"
	CodeValidationPasswordMatch Code = "VALIDATION_PASSWORD_MATCH"

	// Account errors
	CodeAccountEmailTaken         Code = "ACCOUNT_EMAIL_TAKEN"
	CodeAccountInvalidCredentials Code = "ACCOUNT_INVALID_CREDENTIALS"

	// Catalog errors
	CodeProductNotFound Code = "PRODUCT_NOT_FOUND"

	// Cart errors
	CodeCartEmpty       Code = "CART_EMPTY"
	CodeDiscountInvalid Code = "DISCOUNT_INVALID"
	CodeNoSavedCart     Code = "NO_SAVED_CART"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - validation failures, bad input
	case CodeValidationMissingField,
		CodeValidationEmailFormat,
		CodeValidationPhoneFormat,
		CodeValidationPasswordShort,
		CodeValidationPasswordMatch,
		CodeDiscountInvalid:
		return http.StatusBadRequest

	// Unauthorized - credential failures
	case CodeAccountInvalidCredentials:
		return http.StatusUnauthorized

	// Not found - resource doesn't exist
	case CodeNotFound,
		CodeProductNotFound,
		CodeNoSavedCart:
		return http.StatusNotFound

	// Conflict - unique resource constraint
	case CodeAccountEmailTaken:
		return http.StatusConflict

	// Unprocessable - state doesn't allow operation
	case CodeCartEmpty:
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}
