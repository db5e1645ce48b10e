package response

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"
)

// Error segue RFC 7807 (Problem Details for HTTP APIs)
type Error struct {
	problems.Problem
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError representa um erro de validação de campo
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewError cria uma nova resposta de erro RFC 7807
func NewError(c *gin.Context, problemType, title string, status int, detail string) Error {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return Error{
		Problem: problems.Problem{
			Type:     baseURL + problemType,
			Title:    title,
			Status:   status,
			Detail:   detail,
			Instance: c.Request.URL.Path,
		},
	}
}

// NewErrorI18n cria uma resposta de erro usando i18n
func NewErrorI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) Error {
	title := T(c, titleKey, params...)
	detail := T(c, detailKey, params...)
	return NewError(c, problemType, title, status, detail)
}

// Write escreve a resposta de erro com o media type RFC 7807
func Write(c *gin.Context, resp Error) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(resp.Status, resp)
}

// Helper functions para respostas de erro comuns com i18n

// ValidationI18n cria uma resposta de erro de validação
func ValidationI18n(c *gin.Context, fieldErrors []FieldError) Error {
	resp := NewErrorI18n(
		c,
		"/problems/validation-error",
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	resp.Errors = fieldErrors
	return resp
}

// NotFoundI18n cria uma resposta de erro 404
func NotFoundI18n(c *gin.Context, resource string) Error {
	return NewErrorI18n(
		c,
		"/problems/not-found",
		"error.not_found.title",
		"error.not_found.detail",
		404,
		map[string]interface{}{"Resource": resource},
	)
}

// ConflictI18n cria uma resposta de erro 409
func ConflictI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) Error {
	return NewErrorI18n(
		c,
		"/problems/conflict",
		"error.conflict.title",
		detailKey,
		409,
		params...,
	)
}

// UnauthorizedI18n cria uma resposta de erro 401
func UnauthorizedI18n(c *gin.Context) Error {
	return NewErrorI18n(
		c,
		"/problems/unauthorized",
		"error.unauthorized.title",
		"error.unauthorized.detail",
		401,
	)
}

// ForbiddenI18n cria uma resposta de erro 403
func ForbiddenI18n(c *gin.Context) Error {
	return NewErrorI18n(
		c,
		"/problems/forbidden",
		"error.forbidden.title",
		"error.forbidden.detail",
		403,
	)
}

// InternalI18n cria uma resposta de erro 500
func InternalI18n(c *gin.Context) Error {
	return NewErrorI18n(
		c,
		"/problems/internal-error",
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}

// ExternalServiceI18n cria uma resposta de erro 503
func ExternalServiceI18n(c *gin.Context) Error {
	return NewErrorI18n(
		c,
		"/problems/external-service",
		"error.external_service.title",
		"error.external_service.detail",
		503,
	)
}

// BadRequestI18n cria uma resposta de erro 400
func BadRequestI18n(c *gin.Context) Error {
	return NewErrorI18n(
		c,
		"/problems/bad-request",
		"error.bad_request.title",
		"error.bad_request.detail",
		400,
	)
}
