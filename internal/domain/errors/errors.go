package errors

import (
	"fmt"
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// ValidationError indica campo obrigatório ausente/inválido ou
// foreign key não positiva. Nunca há escrita no store após este erro.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field %q: %s", e.Field, e.Message)
}

// NewValidationError cria um ValidationError para um campo
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewRequiredFieldError cria um ValidationError de campo obrigatório
func NewRequiredFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}

// NotFoundError indica entidade não encontrada por id.
// Apenas alguns services (Rol, Module e as associações) sinalizam
// not-found com este tipo; os demais retornam DTO nulo.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// NewNotFoundError cria um NotFoundError
func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError indica relação duplicada ou transição de estado inválida
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflictError cria um ConflictError
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// ExternalServiceError envolve uma falha vinda da fronteira de
// persistência, preservando a causa para diagnóstico
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("external service %s failed: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("external service %s failed", e.Service)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// NewExternalServiceError cria um ExternalServiceError
func NewExternalServiceError(service string, err error) *ExternalServiceError {
	return &ExternalServiceError{Service: service, Err: err}
}
