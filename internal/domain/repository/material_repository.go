package repository

import (
	"context"

	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
)

// MaterialFilter filtros opcionales del listado. Los campos de texto aplican
// búsqueda parcial sin distinguir mayúsculas; Status es igualdad exacta.
type MaterialFilter struct {
	IDMaterial   string
	Name         string
	MaterialType string
	Status       string
}

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id string) (*entity.Material, error)
	Update(ctx context.Context, material *entity.Material) error
	// Delete devuelve false si el id no existía.
	Delete(ctx context.Context, id string) (bool, error)
	// List devuelve las filas filtradas en orden determinista (created_at, id).
	// limit <= 0 significa sin límite (usado por el export CSV).
	List(ctx context.Context, f MaterialFilter, limit, offset int) ([]*entity.Material, error)
	Count(ctx context.Context, f MaterialFilter) (int, error)
}
