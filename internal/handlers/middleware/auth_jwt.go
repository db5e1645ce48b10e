package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/adminpro-backend/internal/infrastructure/auth"
	"github.com/rafabene/adminpro-backend/internal/infrastructure/i18n"
)

const (
	// PrincipalIDContextKey guarda o id do principal autenticado
	PrincipalIDContextKey = "principal_id"
	// PrincipalNameContextKey guarda o username do principal autenticado
	PrincipalNameContextKey = "principal_name"
	// PrincipalKindContextKey guarda o tipo do principal ("user" ou "worker")
	PrincipalKindContextKey = "principal_kind"
)

// AuthMiddleware valida tokens Bearer nas rotas protegidas
type AuthMiddleware struct {
	tokens      *auth.TokenManager
	i18nService *i18n.Service
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokens *auth.TokenManager, i18nService *i18n.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, i18nService: i18nService}
}

// RequireAuth exige um token JWT válido no header Authorization
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			m.unauthorized(c)
			return
		}

		claims, err := m.tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			m.unauthorized(c)
			return
		}

		c.Set(PrincipalIDContextKey, claims.UID)
		c.Set(PrincipalNameContextKey, claims.Username)
		c.Set(PrincipalKindContextKey, claims.Kind)

		c.Next()
	}
}

func (m *AuthMiddleware) unauthorized(c *gin.Context) {
	lang := c.GetString(LanguageContextKey)
	if lang == "" {
		lang = m.i18nService.GetDefaultLanguage()
	}

	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.Problem{
		Type:     baseURL + "/problems/unauthorized",
		Title:    m.i18nService.T(lang, "error.unauthorized.title"),
		Status:   http.StatusUnauthorized,
		Detail:   m.i18nService.T(lang, "error.unauthorized.detail"),
		Instance: c.Request.URL.Path,
	}

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(http.StatusUnauthorized, problem)
}
