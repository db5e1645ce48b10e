package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/dto"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// PermissionHandler lida com requisições HTTP relacionadas a
// permission bundles
type PermissionHandler struct {
	permissionService *services.PermissionService
	activity          *services.ActivityLogService
}

// NewPermissionHandler cria um novo PermissionHandler
func NewPermissionHandler(permissionService *services.PermissionService, activity *services.ActivityLogService) *PermissionHandler {
	return &PermissionHandler{
		permissionService: permissionService,
		activity:          activity,
	}
}

func permissionDetails(d dto.PermissionDTO) string {
	return fmt.Sprintf("read=%t create=%t update=%t delete=%t", d.CanRead, d.CanCreate, d.CanUpdate, d.CanDelete)
}

// CreatePermission godoc
// @Summary Create permission bundle
// @Tags permissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param permission body dto.PermissionDTO true "Permission payload"
// @Success 201 {object} dto.PermissionDTO
// @Failure 400 {object} response.Error
// @Router /permissions [post]
func (h *PermissionHandler) CreatePermission(c *gin.Context) {
	var req dto.PermissionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	created, err := h.permissionService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recordActivity(c, h.activity, actionCreate, "Permission", created.ID, permissionDetails(created))
	c.JSON(http.StatusCreated, created)
}

// ListPermissions godoc
// @Summary List permission bundles
// @Tags permissions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.PermissionDTO
// @Router /permissions [get]
func (h *PermissionHandler) ListPermissions(c *gin.Context) {
	permissions, err := h.permissionService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, permissions)
}

// GetPermission godoc
// @Summary Get permission bundle by id
// @Tags permissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Permission id"
// @Success 200 {object} dto.PermissionDTO
// @Failure 404 {object} response.Error
// @Router /permissions/{id} [get]
func (h *PermissionHandler) GetPermission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	permission, err := h.permissionService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if permission == nil {
		response.Write(c, response.NotFoundI18n(c, "Permission"))
		return
	}

	c.JSON(http.StatusOK, permission)
}

// UpdatePermission godoc
// @Summary Update permission bundle
// @Tags permissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Permission id"
// @Param permission body dto.PermissionDTO true "Permission payload"
// @Success 200 {object} dto.PermissionDTO
// @Failure 404 {object} response.Error
// @Router /permissions/{id} [put]
func (h *PermissionHandler) UpdatePermission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.PermissionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}
	req.ID = id

	updated, err := h.permissionService.Update(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !updated {
		response.Write(c, response.NotFoundI18n(c, "Permission"))
		return
	}

	recordActivity(c, h.activity, actionUpdate, "Permission", id, permissionDetails(req))
	c.JSON(http.StatusOK, req)
}

// DeletePermission godoc
// @Summary Soft delete permission bundle
// @Tags permissions
// @Security BearerAuth
// @Param id path int true "Permission id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /permissions/{id} [delete]
func (h *PermissionHandler) DeletePermission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.permissionService.Delete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "Permission"))
		return
	}

	recordActivity(c, h.activity, actionDelete, "Permission", id, "")
	c.Status(http.StatusNoContent)
}

// PermanentDeletePermission godoc
// @Summary Permanently delete permission bundle
// @Tags permissions
// @Security BearerAuth
// @Param id path int true "Permission id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /permissions/{id}/permanent [delete]
func (h *PermissionHandler) PermanentDeletePermission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.permissionService.PermanentDelete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "Permission"))
		return
	}

	recordActivity(c, h.activity, actionPermanentDelete, "Permission", id, "")
	c.Status(http.StatusNoContent)
}
