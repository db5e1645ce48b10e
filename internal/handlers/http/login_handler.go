package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/dto"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/infrastructure/auth"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// LoginHandler lida com o CRUD de credenciais de usuários.
// Senhas chegam em texto plano e são armazenadas como hash bcrypt;
// nenhuma resposta devolve o hash.
type LoginHandler struct {
	loginService *services.LoginService
	activity     *services.ActivityLogService
}

// NewLoginHandler cria um novo LoginHandler
func NewLoginHandler(loginService *services.LoginService, activity *services.ActivityLogService) *LoginHandler {
	return &LoginHandler{
		loginService: loginService,
		activity:     activity,
	}
}

// CreateLogin godoc
// @Summary Create user credentials
// @Tags logins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param login body dto.LoginDTO true "Login payload"
// @Success 201 {object} dto.LoginDTO
// @Failure 400 {object} response.Error
// @Router /logins [post]
func (h *LoginHandler) CreateLogin(c *gin.Context) {
	var req dto.LoginDTO
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

	created, err := h.loginService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	recordActivity(c, h.activity, actionCreate, "Login", created.ID, created.Username)

	created.Password = ""
	c.JSON(http.StatusCreated, created)
}

// ListLogins godoc
// @Summary List user credentials
// @Tags logins
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.LoginDTO
// @Router /logins [get]
func (h *LoginHandler) ListLogins(c *gin.Context) {
	logins, err := h.loginService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	for i := range logins {
		logins[i].Password = ""
	}
	c.JSON(http.StatusOK, logins)
}

// GetLogin godoc
// @Summary Get user credentials by id
// @Tags logins
// @Produce json
// @Security BearerAuth
// @Param id path int true "Login id"
// @Success 200 {object} dto.LoginDTO
// @Failure 404 {object} response.Error
// @Router /logins/{id} [get]
func (h *LoginHandler) GetLogin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	login, err := h.loginService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if login == nil {
		response.Write(c, response.NotFoundI18n(c, "Login"))
		return
	}

	login.Password = ""
	c.JSON(http.StatusOK, login)
}

// UpdateLogin godoc
// @Summary Update user credentials
// @Tags logins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Login id"
// @Param login body dto.LoginDTO true "Login payload"
// @Success 200 {object} dto.LoginDTO
// @Failure 404 {object} response.Error
// @Router /logins/{id} [put]
func (h *LoginHandler) UpdateLogin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.LoginDTO
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

	updated, err := h.loginService.Update(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !updated {
		response.Write(c, response.NotFoundI18n(c, "Login"))
		return
	}

	recordActivity(c, h.activity, actionUpdate, "Login", id, req.Username)

	req.Password = ""
	c.JSON(http.StatusOK, req)
}

// DeleteLogin godoc
// @Summary Soft delete user credentials
// @Tags logins
// @Security BearerAuth
// @Param id path int true "Login id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /logins/{id} [delete]
func (h *LoginHandler) DeleteLogin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.loginService.Delete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "Login"))
		return
	}

	recordActivity(c, h.activity, actionDelete, "Login", id, "")
	c.Status(http.StatusNoContent)
}

// PermanentDeleteLogin godoc
// @Summary Permanently delete user credentials
// @Tags logins
// @Security BearerAuth
// @Param id path int true "Login id"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /logins/{id}/permanent [delete]
func (h *LoginHandler) PermanentDeleteLogin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if !h.loginService.PermanentDelete(c.Request.Context(), id) {
		response.Write(c, response.NotFoundI18n(c, "Login"))
		return
	}

	recordActivity(c, h.activity, actionPermanentDelete, "Login", id, "")
	c.Status(http.StatusNoContent)
}
