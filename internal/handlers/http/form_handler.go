package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/dto"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// FormHandler lida com requisições HTTP relacionadas a forms
type FormHandler struct {
	formService *services.FormService
	activity    *services.ActivityLogService
}

// NewFormHandler cria um novo FormHandler
func NewFormHandler(formService *services.FormService, activity *services.ActivityLogService) *FormHandler {
	return &FormHandler{
		formService: formService,
		activity:    activity,
	}
}

// CreateForm godoc
// @Summary Create form
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param form body dto.FormDTO true "Form payload"
// @Success 201 {object} dto.FormDTO
// @Failure 400 {object} response.Error
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var req dto.FormDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	created, err := h.formService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recordActivity(c, h.activity, actionCreate, "Form", created.ID, created.Code)
	c.JSON(http.StatusCreated, created)
}

// ListForms godoc
// @Summary List forms
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FormDTO
// @Router /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	forms, err := h.formService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, forms)
}

// GetForm godoc
// @Summary Get form by id
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form id"
// @Success 200 {object} dto.FormDTO
// @Failure 404 {object} response.Error
// @Router /forms/{id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := h.formService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if form == nil {
		response.Write(c, response.NotFoundI18n(c, "Form"))
		return
	}

	c.JSON(http.StatusOK, form)
}

// UpdateForm godoc
// @Summary Update form
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form id"
// @Param form body dto.FormDTO true "Form payload"
// @Success 200 {object} dto.FormDTO
// @Failure 404 {object} response.Error
// @Router /forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.FormDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}
	req.ID = id

	updated, err := h.formService.Update(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !updated {
		response.Write(c, response.NotFoundI18n(c, "Form"))
		return
	}

	recordActivity(c, h.activity, actionUpdate, "Form", id, req.Code)
	c.JSON(http.StatusOK, req)
}

// DeleteForm godoc
// @Summary Soft delete form
// @Tags forms
// @Security BearerAuth
// @Param id path int true "Form id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.formService.Delete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "Form"))
		return
	}

	recordActivity(c, h.activity, actionDelete, "Form", id, "")
	c.Status(http.StatusNoContent)
}

// PermanentDeleteForm godoc
// @Summary Permanently delete form
// @Tags forms
// @Security BearerAuth
// @Param id path int true "Form id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /forms/{id}/permanent [delete]
func (h *FormHandler) PermanentDeleteForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.formService.PermanentDelete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "Form"))
		return
	}

	recordActivity(c, h.activity, actionPermanentDelete, "Form", id, "")
	c.Status(http.StatusNoContent)
}
