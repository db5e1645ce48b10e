package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/dto"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/infrastructure/auth"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// WorkerLoginHandler lida com o CRUD de credenciais de workers.
// Mesmo tratamento de senha do LoginHandler.
type WorkerLoginHandler struct {
	workerLoginService *services.WorkerLoginService
	activity           *services.ActivityLogService
}

// NewWorkerLoginHandler cria um novo WorkerLoginHandler
func NewWorkerLoginHandler(workerLoginService *services.WorkerLoginService, activity *services.ActivityLogService) *WorkerLoginHandler {
	return &WorkerLoginHandler{
		workerLoginService: workerLoginService,
		activity:           activity,
	}
}

// CreateWorkerLogin godoc
// @Summary Create worker credentials
// @Tags worker-logins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param login body dto.WorkerLoginDTO true "Worker login payload"
// @Success 201 {object} dto.WorkerLoginDTO
// @Failure 400 {object} response.Error
// @Router /worker-logins [post]
func (h *WorkerLoginHandler) CreateWorkerLogin(c *gin.Context) {
	var req dto.WorkerLoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			response.Write(c, response.InternalI18n(c))
			return
		}
		req.Password = hash
	}

	created, err := h.workerLoginService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recordActivity(c, h.activity, actionCreate, "WorkerLogin", created.ID, created.Username)

	created.Password = ""
	c.JSON(http.StatusCreated, created)
}

// ListWorkerLogins godoc
// @Summary List worker credentials
// @Tags worker-logins
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.WorkerLoginDTO
// @Router /worker-logins [get]
func (h *WorkerLoginHandler) ListWorkerLogins(c *gin.Context) {
	logins, err := h.workerLoginService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	for i := range logins {
		logins[i].Password = ""
	}
	c.JSON(http.StatusOK, logins)
}

// GetWorkerLogin godoc
// @Summary Get worker credentials by id
// @Tags worker-logins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Worker login id"
// @Success 200 {object} dto.WorkerLoginDTO
// @Failure 404 {object} response.Error
// @Router /worker-logins/{id} [get]
func (h *WorkerLoginHandler) GetWorkerLogin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	login, err := h.workerLoginService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if login == nil {
		response.Write(c, response.NotFoundI18n(c, "WorkerLogin"))
		return
	}

	login.Password = ""
	c.JSON(http.StatusOK, login)
}

// UpdateWorkerLogin godoc
// @Summary Update worker credentials
// @Tags worker-logins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Worker login id"
// @Param login body dto.WorkerLoginDTO true "Worker login payload"
// @Success 200 {object} dto.WorkerLoginDTO
// @Failure 404 {object} response.Error
// @Router /worker-logins/{id} [put]
func (h *WorkerLoginHandler) UpdateWorkerLogin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.WorkerLoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}
	req.ID = id

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			response.Write(c, response.InternalI18n(c))
			return
		}
		req.Password = hash
	}

	updated, err := h.workerLoginService.Update(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !updated {
		response.Write(c, response.NotFoundI18n(c, "WorkerLogin"))
		return
	}

	recordActivity(c, h.activity, actionUpdate, "WorkerLogin", id, req.Username)

	req.Password = ""
	c.JSON(http.StatusOK, req)
}

// DeleteWorkerLogin godoc
// @Summary Soft delete worker credentials
// @Tags worker-logins
// @Security BearerAuth
// @Param id path int true "Worker login id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /worker-logins/{id} [delete]
func (h *WorkerLoginHandler) DeleteWorkerLogin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.workerLoginService.Delete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "WorkerLogin"))
		return
	}

	recordActivity(c, h.activity, actionDelete, "WorkerLogin", id, "")
	c.Status(http.StatusNoContent)
}

// PermanentDeleteWorkerLogin godoc
// @Summary Permanently delete worker credentials
// @Tags worker-logins
// @Security BearerAuth
// @Param id path int true "Worker login id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /worker-logins/{id}/permanent [delete]
func (h *WorkerLoginHandler) PermanentDeleteWorkerLogin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.workerLoginService.PermanentDelete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "WorkerLogin"))
		return
	}

	recordActivity(c, h.activity, actionPermanentDelete, "WorkerLogin", id, "")
	c.Status(http.StatusNoContent)
}
