package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/dto"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// ModuleHandler lida com requisições HTTP relacionadas a modules.
// Segue o mesmo contrato de erros tipados do RolHandler.
type ModuleHandler struct {
	moduleService *services.ModuleService
	activity      *services.ActivityLogService
}

// NewModuleHandler cria um novo ModuleHandler
func NewModuleHandler(moduleService *services.ModuleService, activity *services.ActivityLogService) *ModuleHandler {
	return &ModuleHandler{
		moduleService: moduleService,
		activity:      activity,
	}
}

// CreateModule godoc
// @Summary Create module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param module body dto.ModuleDTO true "Module payload"
// @Success 201 {object} dto.ModuleDTO
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /modules [post]
func (h *ModuleHandler) CreateModule(c *gin.Context) {
	var req dto.ModuleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	created, err := h.moduleService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recordActivity(c, h.activity, actionCreate, "Module", created.ID, created.Code)
	c.JSON(http.StatusCreated, created)
}

// ListModules godoc
// @Summary List modules
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ModuleDTO
// @Failure 503 {object} response.Error
// @Router /modules [get]
func (h *ModuleHandler) ListModules(c *gin.Context) {
	modules, err := h.moduleService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, modules)
}

// GetModule godoc
// @Summary Get module by id
// @Tags modules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module id"
// @Success 200 {object} dto.ModuleDTO
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /modules/{id} [get]
func (h *ModuleHandler) GetModule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	module, err := h.moduleService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, module)
}

// UpdateModule godoc
// @Summary Update module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module id"
// @Param module body dto.ModuleDTO true "Module payload"
// @Success 200 {object} dto.ModuleDTO
// @Failure 404 {object} response.Error
// @Router /modules/{id} [put]
func (h *ModuleHandler) UpdateModule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ModuleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}
	req.ID = id

	updated, err := h.moduleService.Update(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !updated {
		response.Write(c, response.NotFoundI18n(c, "Module"))
		return
	}

	recordActivity(c, h.activity, actionUpdate, "Module", id, req.Code)
	c.JSON(http.StatusOK, req)
}

// DeleteModule godoc
// @Summary Soft delete module
// @Tags modules
// @Security BearerAuth
// @Param id path int true "Module id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /modules/{id} [delete]
func (h *ModuleHandler) DeleteModule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.moduleService.Delete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "Module"))
		return
	}

	recordActivity(c, h.activity, actionDelete, "Module", id, "")
	c.Status(http.StatusNoContent)
}

// PermanentDeleteModule godoc
// @Summary Permanently delete module
// @Tags modules
// @Security BearerAuth
// @Param id path int true "Module id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /modules/{id}/permanent [delete]
func (h *ModuleHandler) PermanentDeleteModule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.moduleService.PermanentDelete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "Module"))
		return
	}

	recordActivity(c, h.activity, actionPermanentDelete, "Module", id, "")
	c.Status(http.StatusNoContent)
}
