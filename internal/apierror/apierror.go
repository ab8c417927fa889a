// Package apierror provides the error taxonomy and response envelopes for the
// API. Every 4xx/5xx answer goes through this package so status codes and
// body shapes stay consistent across handlers.
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies an API error and determines its HTTP status code.
type Kind int

const (
	// KindValidation — payload shape or constraint violation (400).
	KindValidation Kind = iota
	// KindMissingKey — absent local_id / entity id on read/update/delete (400).
	KindMissingKey
	// KindReferenceNotFound — a referenced entity (local, usuario, producto,
	// combo, empleado) is absent during a create/update flow (400).
	KindReferenceNotFound
	// KindEntityNotFound — the addressed entity itself is absent (404).
	KindEntityNotFound
	// KindUnexpected — store/bus/internal fault (500).
	KindUnexpected
)

// Error is the canonical API error. Titulo fills the "error" field of the
// response envelope, Mensaje the optional "message" field.
type Error struct {
	Kind    Kind
	Titulo  string
	Mensaje string
	// Fields carries per-field constraint violations for validation errors.
	Fields map[string]string
}

func (e *Error) Error() string {
	if e.Mensaje != "" {
		return e.Titulo + ": " + e.Mensaje
	}
	return e.Titulo
}

// Status maps the error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindMissingKey, KindReferenceNotFound:
		return http.StatusBadRequest
	case KindEntityNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(titulo, mensaje string) *Error {
	return &Error{Kind: KindValidation, Titulo: titulo, Mensaje: mensaje}
}

func ValidationFields(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Titulo: "Error de validación", Fields: fields}
}

func MissingKey(mensaje string) *Error {
	return &Error{Kind: KindMissingKey, Titulo: mensaje}
}

func ReferenceNotFound(titulo, mensaje string) *Error {
	return &Error{Kind: KindReferenceNotFound, Titulo: titulo, Mensaje: mensaje}
}

func EntityNotFound(titulo string) *Error {
	return &Error{Kind: KindEntityNotFound, Titulo: titulo}
}

// Unexpected wraps an internal fault. The raw message is surfaced in the
// response body, as the store/bus errors carry no secrets here.
func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Titulo: "Error interno del servidor", Mensaje: err.Error()}
}

// From normalizes any error into an *Error, defaulting to Unexpected.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Unexpected(err)
}

// Envelope is the JSON body for error responses:
// {"error": ..., "message"?: ..., "fields"?: {...}}.
type Envelope struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Body builds the response envelope for an error.
func (e *Error) Body() Envelope {
	return Envelope{Error: e.Titulo, Message: e.Mensaje, Fields: e.Fields}
}
