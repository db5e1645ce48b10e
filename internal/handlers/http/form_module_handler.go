package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/dto"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// FormModuleHandler lida com a junção Form↔Module
type FormModuleHandler struct {
	formModuleService *services.FormModuleService
	activity          *services.ActivityLogService
}

// NewFormModuleHandler cria um novo FormModuleHandler
func NewFormModuleHandler(formModuleService *services.FormModuleService, activity *services.ActivityLogService) *FormModuleHandler {
	return &FormModuleHandler{
		formModuleService: formModuleService,
		activity:          activity,
	}
}

// CreateFormModule godoc
// @Summary Attach form to module
// @Tags form-modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param formModule body dto.FormModuleDTO true "FormModule payload"
// @Success 201 {object} dto.FormModuleDTO
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /form-modules [post]
func (h *FormModuleHandler) CreateFormModule(c *gin.Context) {
	var req dto.FormModuleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	created, err := h.formModuleService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recordActivity(c, h.activity, actionCreate, "FormModule", created.ID,
		fmt.Sprintf("form=%d module=%d", created.FormID, created.ModuleID))
	c.JSON(http.StatusCreated, created)
}

// ListFormModules godoc
// @Summary List form-module associations
// @Tags form-modules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FormModuleDTO
// @Router /form-modules [get]
func (h *FormModuleHandler) ListFormModules(c *gin.Context) {
	formModules, err := h.formModuleService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, formModules)
}

// GetFormModule godoc
// @Summary Get form-module association by id
// @Tags form-modules
// @Produce json
// @Security BearerAuth
// @Param id path int true "FormModule id"
// @Success 200 {object} dto.FormModuleDTO
// @Failure 404 {object} response.Error
// @Router /form-modules/{id} [get]
func (h *FormModuleHandler) GetFormModule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	formModule, err := h.formModuleService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if formModule == nil {
		response.Write(c, response.NotFoundI18n(c, "FormModule"))
		return
	}

	c.JSON(http.StatusOK, formModule)
}

// LookupFormModule godoc
// @Summary Find association by module and form
// @Tags form-modules
// @Produce json
// @Security BearerAuth
// @Param module_id query int true "Module id"
// @Param form_id query int true "Form id"
// @Success 200 {object} dto.FormModuleDTO
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /form-modules/lookup [get]
func (h *FormModuleHandler) LookupFormModule(c *gin.Context) {
	moduleID, err1 := strconv.ParseInt(c.Query("module_id"), 10, 64)
	formID, err2 := strconv.ParseInt(c.Query("form_id"), 10, 64)
	if err1 != nil || err2 != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	formModule, err := h.formModuleService.GetByModuleIDAndFormID(c.Request.Context(), moduleID, formID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if formModule == nil {
		response.Write(c, response.NotFoundI18n(c, "FormModule"))
		return
	}

	c.JSON(http.StatusOK, formModule)
}

// DeleteFormModule godoc
// @Summary Soft delete form-module association
// @Tags form-modules
// @Security BearerAuth
// @Param id path int true "FormModule id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /form-modules/{id} [delete]
func (h *FormModuleHandler) DeleteFormModule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.formModuleService.Delete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "FormModule"))
		return
	}

	recordActivity(c, h.activity, actionDelete, "FormModule", id, "")
	c.Status(http.StatusNoContent)
}

// PermanentDeleteFormModule godoc
// @Summary Permanently delete form-module association
// @Tags form-modules
// @Security BearerAuth
// @Param id path int true "FormModule id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /form-modules/{id}/permanent [delete]
func (h *FormModuleHandler) PermanentDeleteFormModule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.formModuleService.PermanentDelete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "FormModule"))
		return
	}

	recordActivity(c, h.activity, actionPermanentDelete, "FormModule", id, "")
	c.Status(http.StatusNoContent)
}
