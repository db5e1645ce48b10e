package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/dto"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// RolUserHandler lida com a junção User↔Rol
type RolUserHandler struct {
	rolUserService *services.RolUserService
	activity       *services.ActivityLogService
}

// NewRolUserHandler cria um novo RolUserHandler
func NewRolUserHandler(rolUserService *services.RolUserService, activity *services.ActivityLogService) *RolUserHandler {
	return &RolUserHandler{
		rolUserService: rolUserService,
		activity:       activity,
	}
}

// CreateRolUser godoc
// @Summary Assign rol to user
// @Tags rol-users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rolUser body dto.RolUserDTO true "RolUser payload"
// @Success 201 {object} dto.RolUserDTO
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /rol-users [post]
func (h *RolUserHandler) CreateRolUser(c *gin.Context) {
	var req dto.RolUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	created, err := h.rolUserService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recordActivity(c, h.activity, actionCreate, "RolUser", created.ID,
		fmt.Sprintf("user=%d rol=%d", created.UserID, created.RolID))
	c.JSON(http.StatusCreated, created)
}

// ListRolUsers godoc
// @Summary List rol assignments
// @Tags rol-users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RolUserDTO
// @Router /rol-users [get]
func (h *RolUserHandler) ListRolUsers(c *gin.Context) {
	rolUsers, err := h.rolUserService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rolUsers)
}

// GetRolUser godoc
// @Summary Get rol assignment by id
// @Tags rol-users
// @Produce json
// @Security BearerAuth
// @Param id path int true "RolUser id"
// @Success 200 {object} dto.RolUserDTO
// @Failure 404 {object} response.Error
// @Router /rol-users/{id} [get]
func (h *RolUserHandler) GetRolUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rolUser, err := h.rolUserService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if rolUser == nil {
		response.Write(c, response.NotFoundI18n(c, "RolUser"))
		return
	}

	c.JSON(http.StatusOK, rolUser)
}

// GetRolsByUser godoc
// @Summary List rol assignments of a user
// @Tags rol-users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {array} dto.RolUserDTO
// @Router /users/{id}/rols [get]
func (h *RolUserHandler) GetRolsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rolUsers, err := h.rolUserService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rolUsers)
}

// DeleteRolUser godoc
// @Summary Soft delete rol assignment
// @Tags rol-users
// @Security BearerAuth
// @Param id path int true "RolUser id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /rol-users/{id} [delete]
func (h *RolUserHandler) DeleteRolUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.rolUserService.Delete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "RolUser"))
		return
	}

	recordActivity(c, h.activity, actionDelete, "RolUser", id, "")
	c.Status(http.StatusNoContent)
}

// PermanentDeleteRolUser godoc
// @Summary Permanently delete rol assignment
// @Tags rol-users
// @Security BearerAuth
// @Param id path int true "RolUser id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /rol-users/{id}/permanent [delete]
func (h *RolUserHandler) PermanentDeleteRolUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.rolUserService.PermanentDelete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "RolUser"))
		return
	}

	recordActivity(c, h.activity, actionPermanentDelete, "RolUser", id, "")
	c.Status(http.StatusNoContent)
}
