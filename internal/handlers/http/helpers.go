package http

import (
	errs "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/adminpro-backend/internal/domain/errors"
	"github.com/rafabene/adminpro-backend/internal/handlers/middleware"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// Ações registradas no log de atividade
const (
	actionCreate          = "create"
	actionUpdate          = "update"
	actionDelete          = "delete"
	actionPermanentDelete = "permanent_delete"
)

// parseIDParam extrai um id numérico do path. Responde 400 e retorna
// false quando o valor não é numérico.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return 0, false
	}
	return id, true
}

// respondBindError traduz falhas de binding em 400. Violações das
// tags de validação viram erros por campo; qualquer outra falha de
// parse vira um bad request genérico.
func respondBindError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if !errs.As(err, &vErrs) {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	fields := make([]response.FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, response.FieldError{
			Field:   fe.Field(),
			Message: response.T(c, "error.required_field", map[string]interface{}{"Field": strings.ToLower(fe.Field())}),
		})
	}
	response.Write(c, response.ValidationI18n(c, fields))
}

// respondServiceError traduz os erros tipados dos services em
// respostas RFC 7807
func respondServiceError(c *gin.Context, err error) {
	var vErr *errors.ValidationError
	var nfErr *errors.NotFoundError
	var cErr *errors.ConflictError
	var esErr *errors.ExternalServiceError

	switch {
	case errs.As(err, &vErr):
		resp := response.ValidationI18n(c, []response.FieldError{
			{Field: vErr.Field, Message: vErr.Message},
		})
		response.Write(c, resp)
	case errs.As(err, &nfErr):
		response.Write(c, response.NotFoundI18n(c, nfErr.Entity))
	case errs.As(err, &cErr):
		resp := response.NewError(
			c,
			errors.ProblemTypeConflict,
			response.T(c, "error.conflict.title"),
			http.StatusConflict,
			cErr.Message,
		)
		response.Write(c, resp)
	case errs.As(err, &esErr):
		response.Write(c, response.ExternalServiceI18n(c))
	default:
		response.Write(c, response.InternalI18n(c))
	}
}

// recordActivity grava o registro de atividade de uma mutação.
// Falhas já são logadas pelo service e nunca afetam a resposta.
func recordActivity(c *gin.Context, activity *services.ActivityLogService, action, entityType string, entityID int64, details string) {
	if activity == nil {
		return
	}

	userID := c.GetInt64(middleware.PrincipalIDContextKey)
	userName := c.GetString(middleware.PrincipalNameContextKey)

	_, _ = activity.LogActivity(c.Request.Context(), userID, userName, action, entityType, entityID, details)
}
