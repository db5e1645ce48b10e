package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/dto"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// RolFormPermissionHandler lida com as concessões Rol×Form×Permission
type RolFormPermissionHandler struct {
	grantService *services.RolFormPermissionService
	activity     *services.ActivityLogService
}

// NewRolFormPermissionHandler cria um novo RolFormPermissionHandler
func NewRolFormPermissionHandler(grantService *services.RolFormPermissionService, activity *services.ActivityLogService) *RolFormPermissionHandler {
	return &RolFormPermissionHandler{
		grantService: grantService,
		activity:     activity,
	}
}

// CreateRolFormPermission godoc
// @Summary Grant permission on a form to a rol
// @Tags rol-form-permissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param grant body dto.RolFormPermissionDTO true "Grant payload"
// @Success 201 {object} dto.RolFormPermissionDTO
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /rol-form-permissions [post]
func (h *RolFormPermissionHandler) CreateRolFormPermission(c *gin.Context) {
	var req dto.RolFormPermissionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	created, err := h.grantService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recordActivity(c, h.activity, actionCreate, "RolFormPermission", created.ID,
		fmt.Sprintf("rol=%d form=%d permission=%d", created.RolID, created.FormID, created.PermissionID))
	c.JSON(http.StatusCreated, created)
}

// ListRolFormPermissions godoc
// @Summary List grants
// @Tags rol-form-permissions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RolFormPermissionDTO
// @Router /rol-form-permissions [get]
func (h *RolFormPermissionHandler) ListRolFormPermissions(c *gin.Context) {
	grants, err := h.grantService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, grants)
}

// GetRolFormPermission godoc
// @Summary Get grant by id
// @Tags rol-form-permissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grant id"
// @Success 200 {object} dto.RolFormPermissionDTO
// @Failure 404 {object} response.Error
// @Router /rol-form-permissions/{id} [get]
func (h *RolFormPermissionHandler) GetRolFormPermission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	grant, err := h.grantService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if grant == nil {
		response.Write(c, response.NotFoundI18n(c, "RolFormPermission"))
		return
	}

	c.JSON(http.StatusOK, grant)
}

// GetGrantsByRol godoc
// @Summary List grants of a rol
// @Tags rol-form-permissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rol id"
// @Success 200 {array} dto.RolFormPermissionDTO
// @Router /rols/{id}/grants [get]
func (h *RolFormPermissionHandler) GetGrantsByRol(c *gin.Context) {
	rolID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	grants, err := h.grantService.GetByRolID(c.Request.Context(), rolID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, grants)
}

// DeleteRolFormPermission godoc
// @Summary Soft delete grant
// @Tags rol-form-permissions
// @Security BearerAuth
// @Param id path int true "Grant id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /rol-form-permissions/{id} [delete]
func (h *RolFormPermissionHandler) DeleteRolFormPermission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.grantService.Delete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "RolFormPermission"))
		return
	}

	recordActivity(c, h.activity, actionDelete, "RolFormPermission", id, "")
	c.Status(http.StatusNoContent)
}

// PermanentDeleteRolFormPermission godoc
// @Summary Permanently delete grant
// @Tags rol-form-permissions
// @Security BearerAuth
// @Param id path int true "Grant id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /rol-form-permissions/{id}/permanent [delete]
func (h *RolFormPermissionHandler) PermanentDeleteRolFormPermission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.grantService.PermanentDelete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "RolFormPermission"))
		return
	}

	recordActivity(c, h.activity, actionPermanentDelete, "RolFormPermission", id, "")
	c.Status(http.StatusNoContent)
}
