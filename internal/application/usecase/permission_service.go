package usecase

import (
	"context"

	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
	"github.com/tu-usuario/masterdata-pro/internal/domain/repository"
)

// Permissions mapa módulo → nivel efectivo (0-3) más los nombres de rol del
// usuario. Se resuelve una sola vez por request y viaja en el contexto HTTP.
type Permissions struct {
	Levels map[string]int
	Roles  []string
}

// Level devuelve el nivel para un módulo; 0 para módulos desconocidos o
// permisos sin resolver.
func (p *Permissions) Level(module string) int {
	if p == nil {
		return entity.LevelNone
	}
	return p.Levels[module]
}

// PermissionService resuelve los permisos efectivos de un usuario: el nivel
// por módulo es el MÁXIMO entre todos sus roles, 0 por defecto. Es el único
// punto de la aplicación que conoce esa regla.
type PermissionService struct {
	roleRepo repository.RoleRepository
}

// NewPermissionService construye el servicio de permisos.
func NewPermissionService(roleRepo repository.RoleRepository) *PermissionService {
	return &PermissionService{roleRepo: roleRepo}
}

// Resolve calcula el mapa de permisos del usuario. Un userID vacío (no
// autenticado) devuelve todos los módulos en 0 y sin roles, nunca error.
func (s *PermissionService) Resolve(ctx context.Context, userID string) (*Permissions, error) {
	levels := make(map[string]int, len(entity.Modules))
	for _, m := range entity.Modules {
		levels[m] = entity.LevelNone
	}
	perms := &Permissions{Levels: levels, Roles: []string{}}
	if userID == "" {
		return perms, nil
	}

	roles, err := s.roleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		perms.Roles = append(perms.Roles, role.RoleName)
		for _, m := range entity.Modules {
			if lvl := role.LevelFor(m); lvl > levels[m] {
				levels[m] = lvl
			}
		}
	}
	return perms, nil
}
