package repository

import (
	"context"

	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
)

// SupplierFilter filtros opcionales del listado de proveedores.
type SupplierFilter struct {
	IDSupplier string
	Name       string
	Country    string
	Status     string
}

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	// GetByIDSupplier busca por el identificador de negocio (único en esquema).
	GetByIDSupplier(ctx context.Context, idSupplier string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	// Delete devuelve false si el id no existía.
	Delete(ctx context.Context, id string) (bool, error)
	// List devuelve las filas filtradas en orden determinista (created_at, id).
	// limit <= 0 significa sin límite (usado por el export CSV).
	List(ctx context.Context, f SupplierFilter, limit, offset int) ([]*entity.Supplier, error)
	Count(ctx context.Context, f SupplierFilter) (int, error)
	// BulkCreate persiste el lote aceptado de la carga masiva en una sola
	// operación; no re-valida unicidad fila a fila.
	BulkCreate(ctx context.Context, suppliers []*entity.Supplier) error
}
