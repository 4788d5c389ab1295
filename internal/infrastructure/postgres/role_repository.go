package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
	"github.com/tu-usuario/masterdata-pro/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// ListByUser devuelve los roles asignados al usuario vía la tabla de unión
// user_roles. La resolución de niveles (máximo por módulo) la hace el
// servicio de permisos, no esta consulta.
func (r *RoleRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Role, error) {
	query := `
		SELECT r.id, r.role_name, r.customer, r.suppliers, r.materials, r.purchases,
			r.sales, r.inventory, r.accounting, r.reporting, r.created_at, r.updated_at
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list roles by user: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.RoleName, &role.Customer, &role.Suppliers,
			&role.Materials, &role.Purchases, &role.Sales, &role.Inventory,
			&role.Accounting, &role.Reporting, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}
