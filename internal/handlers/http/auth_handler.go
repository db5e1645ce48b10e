package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/dto"
	"github.com/rafabene/adminpro-backend/internal/handlers/response"
	"github.com/rafabene/adminpro-backend/internal/infrastructure/auth"
	"github.com/rafabene/adminpro-backend/internal/services"
)

// AuthHandler autentica usuários e workers e emite tokens de acesso
type AuthHandler struct {
	loginService       *services.LoginService
	workerLoginService *services.WorkerLoginService
	tokens             *auth.TokenManager
	tokenTTLSeconds    int64
	activity           *services.ActivityLogService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(
	loginService *services.LoginService,
	workerLoginService *services.WorkerLoginService,
	tokens *auth.TokenManager,
	tokenTTLSeconds int64,
	activity *services.ActivityLogService,
) *AuthHandler {
	return &AuthHandler{
		loginService:       loginService,
		workerLoginService: workerLoginService,
		tokens:             tokens,
		tokenTTLSeconds:    tokenTTLSeconds,
		activity:           activity,
	}
}

func (h *AuthHandler) invalidCredentials(c *gin.Context) {
	resp := response.NewErrorI18n(
		c,
		"/problems/unauthorized",
		"error.unauthorized.title",
		"error.invalid_credentials",
		http.StatusUnauthorized,
	)
	response.Write(c, resp)
}

// Login godoc
// @Summary Authenticate a user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	login, err := h.loginService.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		response.Write(c, response.ExternalServiceI18n(c))
		return
	}
	if login == nil || !login.Status || !auth.CheckPassword(req.Password, login.Password) {
		h.invalidCredentials(c)
		return
	}

	token, err := h.tokens.Issue(login.ID, login.Username, "user")
	if err != nil {
		response.Write(c, response.InternalI18n(c))
		return
	}

	if h.activity != nil {
		_, _ = h.activity.LogActivity(c.Request.Context(), login.ID, login.Username, "login", "Login", login.ID, "")
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   h.tokenTTLSeconds,
	})
}

// WorkerLogin godoc
// @Summary Authenticate a worker
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /auth/worker-login [post]
func (h *AuthHandler) WorkerLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	login, err := h.workerLoginService.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		response.Write(c, response.ExternalServiceI18n(c))
		return
	}
	if login == nil || !login.Status || !auth.CheckPassword(req.Password, login.Password) {
		h.invalidCredentials(c)
		return
	}

	token, err := h.tokens.Issue(login.WorkerID, login.Username, "worker")
	if err != nil {
		response.Write(c, response.InternalI18n(c))
		return
	}

	if h.activity != nil {
		_, _ = h.activity.LogActivity(c.Request.Context(), login.WorkerID, login.Username, "login", "WorkerLogin", login.ID, "")
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   h.tokenTTLSeconds,
	})
}
