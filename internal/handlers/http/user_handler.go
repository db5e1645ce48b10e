package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/dto"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	activity    *services.ActivityLogService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, activity *services.ActivityLogService) *UserHandler {
	return &UserHandler{
		userService: userService,
		activity:    activity,
	}
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body dto.UserDTO true "User payload"
// @Success 201 {object} dto.UserDTO
// @Failure 400 {object} response.Error
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}

	created, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recordActivity(c, h.activity, actionCreate, "User", created.ID, created.Name)
	c.JSON(http.StatusCreated, created)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserDTO
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} dto.UserDTO
// @Failure 404 {object} response.Error
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if user == nil {
		response.Write(c, response.NotFoundI18n(c, "User"))
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Param user body dto.UserDTO true "User payload"
// @Success 200 {object} dto.UserDTO
// @Failure 404 {object} response.Error
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Write(c, response.BadRequestI18n(c))
		return
	}
	req.ID = id

	updated, err := h.userService.Update(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !updated {
		response.Write(c, response.NotFoundI18n(c, "User"))
		return
	}

	recordActivity(c, h.activity, actionUpdate, "User", id, req.Name)

	req.Password = ""
	c.JSON(http.StatusOK, req)
}

// DeleteUser godoc
// @Summary Soft delete user
// @Tags users
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.userService.Delete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "User"))
		return
	}

	recordActivity(c, h.activity, actionDelete, "User", id, "")
	c.Status(http.StatusNoContent)
}

// PermanentDeleteUser godoc
// @Summary Permanently delete user
// @Tags users
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /users/{id}/permanent [delete]
func (h *UserHandler) PermanentDeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.userService.PermanentDelete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "User"))
		return
	}

	recordActivity(c, h.activity, actionPermanentDelete, "User", id, "")
	c.Status(http.StatusNoContent)
}
