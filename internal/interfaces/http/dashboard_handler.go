package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/masterdata-pro/internal/application/dto"
)

// DashboardHandler expone el mapa de permisos del usuario autenticado. Es la
// pantalla de aterrizaje: también el destino de las redirecciones cuando un
// módulo niega el acceso.
type DashboardHandler struct{}

// NewDashboardHandler construye el handler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Show godoc
// @Summary      Permisos efectivos del usuario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PermissionsResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	perms := GetPermissions(c)
	out := dto.PermissionsResponse{
		Permissions: map[string]int{},
		Roles:       []string{},
	}
	if perms != nil {
		out.Permissions = perms.Levels
		out.Roles = perms.Roles
	}
	return c.JSON(out)
}
