package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/adminpro-backend/internal/services"
)

// MenuHandler projeta o menu de navegação de um rol
type MenuHandler struct {
	menuService *services.MenuService
}

// NewMenuHandler cria um novo MenuHandler
func NewMenuHandler(menuService *services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenuByRol godoc
// @Summary Menu projection for a rol
// @Description Modules and readable forms the rol can see, grouped by module
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rol id"
// @Success 200 {array} dto.MenuItemDTO
// @Failure 404 {object} response.Error
// @Router /rols/{id}/menu [get]
func (h *MenuHandler) GetMenuByRol(c *gin.Context) {
	rolID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	menu, err := h.menuService.GetMenuByRolID(c.Request.Context(), rolID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}
