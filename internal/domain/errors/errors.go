package errors

import (
	"net/http"

	"cityhub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.message == "" {
		return e.errorCode
	}

	return e.errorCode + ": " + e.message
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

// Predefined error types. Codes and messages follow the public API contract:
// the wire body is always { "error": "<CODE>: <mensaje>" }.
var (
	// Authentication
	ErrNoToken = NewBaseError(
		http.StatusUnauthorized,
		"NOT_TOKEN",
		"No se ha proporcionado un token",
	)

	ErrTokenFormat = NewBaseError(
		http.StatusUnauthorized,
		"ERROR_ID_TOKEN",
		"El token no tiene un formato válido",
	)

	ErrInvalidSession = NewBaseError(
		http.StatusUnauthorized,
		"NOT_SESSION",
		"La sesión no es válida o ha expirado",
	)

	ErrEmailNotFound = NewBaseError(
		http.StatusNotFound,
		"ERROR_LOGIN",
		"El correo proporcionado no existe",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"ERROR_LOGIN",
		"Credenciales inválidos",
	)

	// Authorization
	ErrOwnership = NewBaseError(
		http.StatusForbidden,
		"ERROR_PERMISOS",
		"No tiene permiso para modificar este recurso",
	)

	ErrNotAllowed = NewBaseError(
		http.StatusForbidden,
		"NOT_ALLOWED",
		"El rol del usuario no permite esta operación",
	)

	// Commerces
	ErrCommerceNotFound = NewBaseError(
		http.StatusNotFound,
		"ERROR_GET_ITEM",
		"No se encontró ningún comercio con el CIF proporcionado",
	)

	ErrCIFExists = NewBaseError(
		http.StatusConflict,
		"ERROR_CREATE_ITEM",
		"El CIF proporcionado ya existe",
	)

	ErrCommerceEmailExists = NewBaseError(
		http.StatusConflict,
		"ERROR_CREATE_ITEM",
		"El correo proporcionado ya existe",
	)

	// Users
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"ERROR_GET_ITEM",
		"No se encontró ningún usuario con el correo proporcionado",
	)

	ErrUserEmailExists = NewBaseError(
		http.StatusConflict,
		"ERROR_CREATE_ITEM",
		"El correo proporcionado ya existe",
	)

	// Uploads
	ErrMissingFile = NewBaseError(
		http.StatusBadRequest,
		"ERROR_CREATE_FILE",
		"Fotos no proporcionadas",
	)

	ErrFileNotFound = NewBaseError(
		http.StatusNotFound,
		"ERROR_GET_FILE",
		"No se encontró ningún fichero con el id proporcionado",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"ERROR_VALIDATION",
		"Los datos proporcionados no son válidos",
	)

	// General
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"ERROR_INTERNO",
		"Error interno del servidor",
	)
)

// DatabaseExecuteError represents a store execution error, implementing the
// AppError interface. The underlying cause stays server-side.
type DatabaseExecuteError struct {
	err  error
	code string
}

// NewDatabaseExecuteError creates a store-related error carrying the public
// operation code (ERROR_GET_ITEMS, ERROR_CREATE_ITEM...).
func NewDatabaseExecuteError(err error, code string) AppError {
	return &DatabaseExecuteError{
		err:  err,
		code: code,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.code).Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return e.code
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error interno del servidor"
}

// Unwrap exposes the cause for errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
