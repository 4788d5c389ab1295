package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/masterdata-pro/internal/application/dto"
	"github.com/tu-usuario/masterdata-pro/internal/application/usecase"
	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
	"github.com/tu-usuario/masterdata-pro/pkg/metrics"
)

// LocalPermissions key del mapa de permisos resuelto en c.Locals.
const LocalPermissions = "permissions"

// permissionResolver contrato mínimo para resolver permisos (lo implementa
// usecase.PermissionService).
type permissionResolver interface {
	Resolve(ctx context.Context, userID string) (*usecase.Permissions, error)
}

// LoadPermissions resuelve los permisos del usuario autenticado UNA vez por
// request y los deja en c.Locals; los handlers y los guards de módulo leen de
// ahí y no vuelven a tocar la base. Debe registrarse después de AuthMiddleware.
func LoadPermissions(resolver permissionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		perms, err := resolver.Resolve(c.Context(), GetUserID(c))
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "PERMISSIONS_UNAVAILABLE", Message: "no se pudieron resolver los permisos"})
		}
		c.Locals(LocalPermissions, perms)
		return c.Next()
	}
}

// GetPermissions devuelve los permisos del contexto (después de LoadPermissions).
// Nunca devuelve nil utilizable como acceso: un contexto sin permisos se
// comporta como nivel 0 en todos los módulos.
func GetPermissions(c *fiber.Ctx) *usecase.Permissions {
	v := c.Locals(LocalPermissions)
	if v == nil {
		return nil
	}
	p, _ := v.(*usecase.Permissions)
	return p
}

// RequireModuleAccess bloquea el acceso al módulo cuando el nivel efectivo es
// 0: redirige al dashboard sin mensaje de error, igual en GET y POST.
func RequireModuleAccess(module string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetPermissions(c).Level(module) == entity.LevelNone {
			metrics.PermissionDenied.WithLabelValues(module).Inc()
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
		return c.Next()
	}
}
