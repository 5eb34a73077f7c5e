package errors

import (
	"net/http"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so errors.Is keeps
// working on copies returned by WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Cart and checkout errors
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"The cart is empty",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Cart item not found",
		"",
	)

	ErrIllegalCheckoutTransition = NewBaseError(
		http.StatusConflict,
		"ILLEGAL_CHECKOUT_TRANSITION",
		"This checkout step is not available from the current step",
		"",
	)

	ErrPaymentInProgress = NewBaseError(
		http.StatusConflict,
		"PAYMENT_IN_PROGRESS",
		"A payment is being processed for this checkout",
		"",
	)

	ErrPaymentFailed = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_FAILED",
		"The payment could not be completed",
		"",
	)

	// Commission ledger errors
	ErrCommissionNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMISSION_NOT_FOUND",
		"Commission not found",
		"",
	)

	ErrIllegalCommissionTransition = NewBaseError(
		http.StatusConflict,
		"ILLEGAL_COMMISSION_TRANSITION",
		"This commission status change is not allowed",
		"",
	)

	ErrVersionConflict = NewBaseError(
		http.StatusConflict,
		"VERSION_CONFLICT",
		"The record was modified by another request",
		"",
	)

	// Member and affiliate errors
	ErrMemberNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBER_NOT_FOUND",
		"Member not found",
		"",
	)

	ErrMemberAlreadyExists = NewBaseError(
		http.StatusConflict,
		"MEMBER_ALREADY_EXISTS",
		"A member with this username already exists",
		"",
	)

	ErrAffiliateNotFound = NewBaseError(
		http.StatusNotFound,
		"AFFILIATE_NOT_FOUND",
		"Affiliate not found",
		"",
	)

	ErrAffiliateNotEligible = NewBaseError(
		http.StatusUnprocessableEntity,
		"AFFILIATE_NOT_ELIGIBLE",
		"The member's role cannot hold an affiliate code",
		"",
	)

	ErrAffiliateCodeTaken = NewBaseError(
		http.StatusConflict,
		"AFFILIATE_CODE_TAKEN",
		"The affiliate code is already in use",
		"",
	)

	// Copytrading errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Copytrading account not found",
		"",
	)

	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"A copytrading account is already registered for this user",
		"",
	)

	// Configuration errors
	ErrEnvKeyNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"ENV_KEY_NOT_ALLOWED",
		"This environment variable cannot be overridden",
		"",
	)

	ErrEnvOverrideNotFound = NewBaseError(
		http.StatusNotFound,
		"ENV_OVERRIDE_NOT_FOUND",
		"Environment override not found",
		"",
	)

	// External service errors
	ErrExternalService = NewBaseError(
		http.StatusBadGateway,
		"EXTERNAL_SERVICE_ERROR",
		"An external service is unavailable",
		"",
	)

	// Authentication-related errors
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a storage execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a storage-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the storage error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Storage operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
