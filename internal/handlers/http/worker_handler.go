package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/dto"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// WorkerHandler lida com requisições HTTP relacionadas a workers
type WorkerHandler struct {
	workerService *services.WorkerService
	activity      *services.ActivityLogService
}

// NewWorkerHandler cria um novo WorkerHandler
func NewWorkerHandler(workerService *services.WorkerService, activity *services.ActivityLogService) *WorkerHandler {
	return &WorkerHandler{
		workerService: workerService,
		activity:      activity,
	}
}

// CreateWorker godoc
// @Summary Create worker
// @Tags workers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param worker body dto.WorkerDTO true "Worker payload"
// @Success 201 {object} dto.WorkerDTO
// @Failure 400 {object} response.Error
// @Router /workers [post]
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	var req dto.WorkerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	created, err := h.workerService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recordActivity(c, h.activity, actionCreate, "Worker", created.ID, created.FirstName+" "+created.LastName)
	c.JSON(http.StatusCreated, created)
}

// ListWorkers godoc
// @Summary List workers
// @Tags workers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.WorkerDTO
// @Router /workers [get]
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	workers, err := h.workerService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workers)
}

// GetWorker godoc
// @Summary Get worker by id
// @Tags workers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Worker id"
// @Success 200 {object} dto.WorkerDTO
// @Failure 404 {object} response.Error
// @Router /workers/{id} [get]
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	worker, err := h.workerService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if worker == nil {
		response.Write(c, response.NotFoundI18n(c, "Worker"))
		return
	}

	c.JSON(http.StatusOK, worker)
}

// UpdateWorker godoc
// @Summary Update worker
// @Tags workers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Worker id"
// @Param worker body dto.WorkerDTO true "Worker payload"
// @Success 200 {object} dto.WorkerDTO
// @Failure 404 {object} response.Error
// @Router /workers/{id} [put]
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.WorkerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}
	req.ID = id

	updated, err := h.workerService.Update(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !updated {
		response.Write(c, response.NotFoundI18n(c, "Worker"))
		return
	}

	recordActivity(c, h.activity, actionUpdate, "Worker", id, req.FirstName+" "+req.LastName)
	c.JSON(http.StatusOK, req)
}

// DeleteWorker godoc
// @Summary Soft delete worker
// @Tags workers
// @Security BearerAuth
// @Param id path int true "Worker id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /workers/{id} [delete]
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.workerService.Delete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "Worker"))
		return
	}

	recordActivity(c, h.activity, actionDelete, "Worker", id, "")
	c.Status(http.StatusNoContent)
}

// PermanentDeleteWorker godoc
// @Summary Permanently delete worker
// @Tags workers
// @Security BearerAuth
// @Param id path int true "Worker id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /workers/{id}/permanent [delete]
func (h *WorkerHandler) PermanentDeleteWorker(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.workerService.PermanentDelete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "Worker"))
		return
	}

	recordActivity(c, h.activity, actionPermanentDelete, "Worker", id, "")
	c.Status(http.StatusNoContent)
}
