package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Tipos de error del dominio. Los servicios los envuelven en *Error y el
// middleware de errores decide el status HTTP a partir del tipo.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrStorage       = errors.New("storage failure")
	ErrInvalidInput  = errors.New("invalid input")
)

// GenericMessage es el mensaje que recibe el cliente cuando el error no tiene tipo conocido
const GenericMessage = "Ha ocurrido un error"

// Error es un error tipado con el mensaje que se le muestra al cliente.
// Kind es uno de los Err* de arriba y Err la causa (puede ser nil).
type Error struct {
	Kind    error
	Message string
	Err     error
}

// NewError crea un error tipado
func NewError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// NotFound es un atajo para errores 404
func NotFound(message string) *Error {
	return NewError(ErrNotFound, message, nil)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap permite que errors.Is encuentre tanto el tipo como la causa
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// StatusCode traduce el tipo de error a un status HTTP
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusBadRequest
	default:
		// ErrStorage, ErrInvalidInput y cualquier otro terminan en 500
		return http.StatusInternalServerError
	}
}

// APIError es el error de aplicación que lleva su propio status.
// Se devuelve tal cual al cliente como {"message", "status_code"}.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// NewAPIError crea un APIError
func NewAPIError(status int, message string) *APIError {
	return &APIError{StatusCode: status, Message: message}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}
