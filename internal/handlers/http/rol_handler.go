package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/dto"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// RolHandler lida com requisições HTTP relacionadas a rols.
// Diferente dos demais, o RolService sinaliza not-found com erro
// tipado, então os caminhos de leitura delegam direto ao
// respondServiceError.
type RolHandler struct {
	rolService *services.RolService
	activity   *services.ActivityLogService
}

// NewRolHandler cria um novo RolHandler
func NewRolHandler(rolService *services.RolService, activity *services.ActivityLogService) *RolHandler {
	return &RolHandler{
		rolService: rolService,
		activity:   activity,
	}
}

// CreateRol godoc
// @Summary Create rol
// @Tags rols
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rol body dto.RolDTO true "Rol payload"
// @Success 201 {object} dto.RolDTO
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /rols [post]
func (h *RolHandler) CreateRol(c *gin.Context) {
	var req dto.RolDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	created, err := h.rolService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recordActivity(c, h.activity, actionCreate, "Rol", created.ID, created.Name)
	c.JSON(http.StatusCreated, created)
}

// ListRols godoc
// @Summary List rols
// @Tags rols
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RolDTO
// @Failure 503 {object} response.Error
// @Router /rols [get]
func (h *RolHandler) ListRols(c *gin.Context) {
	rols, err := h.rolService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rols)
}

// GetRol godoc
// @Summary Get rol by id
// @Tags rols
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rol id"
// @Success 200 {object} dto.RolDTO
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /rols/{id} [get]
func (h *RolHandler) GetRol(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rol, err := h.rolService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rol)
}

// UpdateRol godoc
// @Summary Update rol
// @Tags rols
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rol id"
// @Param rol body dto.RolDTO true "Rol payload"
// @Success 200 {object} dto.RolDTO
// @Failure 404 {object} response.Error
// @Router /rols/{id} [put]
func (h *RolHandler) UpdateRol(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RolDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}
	req.ID = id

	updated, err := h.rolService.Update(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !updated {
		response.Write(c, response.NotFoundI18n(c, "Rol"))
		return
	}

	recordActivity(c, h.activity, actionUpdate, "Rol", id, req.Name)
	c.JSON(http.StatusOK, req)
}

// DeleteRol godoc
// @Summary Soft delete rol
// @Tags rols
// @Security BearerAuth
// @Param id path int true "Rol id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /rols/{id} [delete]
func (h *RolHandler) DeleteRol(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.rolService.Delete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "Rol"))
		return
	}

	recordActivity(c, h.activity, actionDelete, "Rol", id, "")
	c.Status(http.StatusNoContent)
}

// PermanentDeleteRol godoc
// @Summary Permanently delete rol
// @Tags rols
// @Security BearerAuth
// @Param id path int true "Rol id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /rols/{id}/permanent [delete]
func (h *RolHandler) PermanentDeleteRol(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.rolService.PermanentDelete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "Rol"))
		return
	}

	recordActivity(c, h.activity, actionPermanentDelete, "Rol", id, "")
	c.Status(http.StatusNoContent)
}
