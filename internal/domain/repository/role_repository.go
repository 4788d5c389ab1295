package repository

import (
	"context"

	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
)

// RoleRepository define el puerto de persistencia para Role / UserRole (DIP).
// La administración de roles ocurre fuera de este servicio (seed/DBA); aquí
// solo se leen para resolver permisos.
type RoleRepository interface {
	// ListByUser devuelve todos los roles asignados al usuario (vía user_roles).
	ListByUser(ctx context.Context, userID string) ([]*entity.Role, error)
}
