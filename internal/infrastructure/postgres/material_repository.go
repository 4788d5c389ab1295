package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
	"github.com/tu-usuario/masterdata-pro/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository construye el adaptador de persistencia para materiales.
func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepo {
	return &MaterialRepo{pool: pool}
}

const materialColumns = `
	m.id, m.id_material, m.name, m.description, m.unit, m.material_type, m.status,
	m.created_by, COALESCE(u.username, ''), m.created_at, m.updated_at`

const materialFrom = ` FROM materials m LEFT JOIN users u ON u.id = m.created_by`

// materialWhere arma la cláusula WHERE según los filtros: texto con ILIKE
// (búsqueda parcial literal, sin distinguir mayúsculas), status por igualdad.
func materialWhere(f repository.MaterialFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(format string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}
	if f.IDMaterial != "" {
		add("m.id_material ILIKE $%d", likePattern(f.IDMaterial))
	}
	if f.Name != "" {
		add("m.name ILIKE $%d", likePattern(f.Name))
	}
	if f.MaterialType != "" {
		add("m.material_type ILIKE $%d", likePattern(f.MaterialType))
	}
	if f.Status != "" {
		add("m.status = $%d", f.Status)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Create persiste un nuevo material.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (id, id_material, name, description, unit, material_type, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.IDMaterial, m.Name, m.Description, m.Unit, m.MaterialType, m.Status,
		m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID. Devuelve (nil, nil) si no existe.
func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*entity.Material, error) {
	query := `SELECT` + materialColumns + materialFrom + ` WHERE m.id = $1`
	var m entity.Material
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.IDMaterial, &m.Name, &m.Description, &m.Unit, &m.MaterialType, &m.Status,
		&m.CreatedBy, &m.CreatedByName, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// Update actualiza un material existente (no toca created_by ni created_at).
func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	query := `
		UPDATE materials SET id_material = $2, name = $3, description = $4, unit = $5, material_type = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.IDMaterial, m.Name, m.Description, m.Unit, m.MaterialType, m.Status, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// Delete elimina un material por ID. Devuelve false si no existía.
func (r *MaterialRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete material: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista materiales filtrados en orden determinista. limit <= 0 trae todo
// (export CSV).
func (r *MaterialRepo) List(ctx context.Context, f repository.MaterialFilter, limit, offset int) ([]*entity.Material, error) {
	where, args := materialWhere(f)
	query := `SELECT` + materialColumns + materialFrom + where + ` ORDER BY m.created_at ASC, m.id ASC`
	if limit > 0 {
		args = append(args, limit, offset)
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.IDMaterial, &m.Name, &m.Description, &m.Unit, &m.MaterialType, &m.Status,
			&m.CreatedBy, &m.CreatedByName, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Count cuenta materiales que cumplen los filtros.
func (r *MaterialRepo) Count(ctx context.Context, f repository.MaterialFilter) (int, error) {
	where, args := materialWhere(f)
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM materials m`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count materials: %w", err)
	}
	return total, nil
}
