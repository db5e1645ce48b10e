package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/dto"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// ActivityLogHandler expõe as consultas do log de atividade
type ActivityLogHandler struct {
	activityService *services.ActivityLogService
}

// NewActivityLogHandler cria um novo ActivityLogHandler
func NewActivityLogHandler(activityService *services.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{activityService: activityService}
}

func bindListQuery(c *gin.Context) (dto.ListQuery, bool) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return q, false
	}
	return q, true
}

// ListRecent godoc
// @Summary Recent activity
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 500)"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.ActivityLogDTO
// @Router /activity [get]
func (h *ActivityLogHandler) ListRecent(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	logs, err := h.activityService.GetRecent(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetActivityLog godoc
// @Summary Get activity record by id
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} dto.ActivityLogDTO
// @Failure 404 {object} response.Error
// @Router /activity/{id} [get]
func (h *ActivityLogHandler) GetActivityLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.activityService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if record == nil {
		response.Write(c, response.NotFoundI18n(c, "ActivityLog"))
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListByUser godoc
// @Summary Activity of a user
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Param limit query int false "Page size (max 500)"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.ActivityLogDTO
// @Router /activity/users/{id} [get]
func (h *ActivityLogHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	logs, err := h.activityService.GetByUser(c.Request.Context(), userID, q.Limit, q.Offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// ListByEntityType godoc
// @Summary Activity touching an entity type
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param type path string true "Entity type (User, Rol, Form, ...)"
// @Param limit query int false "Page size (max 500)"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.ActivityLogDTO
// @Router /activity/entities/{type} [get]
func (h *ActivityLogHandler) ListByEntityType(c *gin.Context) {
	entityType := c.Param("type")
	if entityType == "" {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	logs, err := h.activityService.GetByEntityType(c.Request.Context(), entityType, q.Limit, q.Offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// ListByDateRange godoc
// @Summary Activity in a date range
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339)"
// @Param limit query int false "Page size (max 500)"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.ActivityLogDTO
// @Failure 400 {object} response.Error
// @Router /activity/range [get]
func (h *ActivityLogHandler) ListByDateRange(c *gin.Context) {
	from, err1 := time.Parse(time.RFC3339, c.Query("from"))
	to, err2 := time.Parse(time.RFC3339, c.Query("to"))
	if err1 != nil || err2 != nil || to.Before(from) {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	logs, err := h.activityService.GetByDateRange(c.Request.Context(), from, to, q.Limit, q.Offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
