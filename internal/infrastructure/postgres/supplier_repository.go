package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/masterdata-pro/internal/domain"
	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
	"github.com/tu-usuario/masterdata-pro/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

const supplierColumns = `
	s.id, s.id_supplier, s.legal_name, s.name, s.tax_id, s.country, s.state_province,
	s.city, s.address, s.zip_code, s.phone, s.email, s.contact_name, s.contact_role,
	s.category, s.payment_terms, s.currency, s.payment_method, s.bank_account, s.status,
	s.created_by, COALESCE(u.username, ''), s.created_at, s.updated_at`

const supplierFrom = ` FROM suppliers s LEFT JOIN users u ON u.id = s.created_by`

func supplierWhere(f repository.SupplierFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(format string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}
	if f.IDSupplier != "" {
		add("s.id_supplier ILIKE $%d", likePattern(f.IDSupplier))
	}
	if f.Name != "" {
		add("s.name ILIKE $%d", likePattern(f.Name))
	}
	if f.Country != "" {
		add("s.country ILIKE $%d", likePattern(f.Country))
	}
	if f.Status != "" {
		add("s.status = $%d", f.Status)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.IDSupplier, &s.LegalName, &s.Name, &s.TaxID, &s.Country, &s.StateProvince,
		&s.City, &s.Address, &s.ZipCode, &s.Phone, &s.Email, &s.ContactName, &s.ContactRole,
		&s.Category, &s.PaymentTerms, &s.Currency, &s.PaymentMethod, &s.BankAccount, &s.Status,
		&s.CreatedBy, &s.CreatedByName, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo proveedor. Mapea la violación del índice único de
// id_supplier a ErrDuplicate.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, id_supplier, legal_name, name, tax_id, country, state_province,
			city, address, zip_code, phone, email, contact_name, contact_role,
			category, payment_terms, currency, payment_method, bank_account, status,
			created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.IDSupplier, s.LegalName, s.Name, s.TaxID, s.Country, s.StateProvince,
		s.City, s.Address, s.ZipCode, s.Phone, s.Email, s.ContactName, s.ContactRole,
		s.Category, s.PaymentTerms, s.Currency, s.PaymentMethod, s.BankAccount, s.Status,
		s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	query := `SELECT` + supplierColumns + supplierFrom + ` WHERE s.id = $1`
	s, err := scanSupplier(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// GetByIDSupplier busca por identificador de negocio. Devuelve (nil, nil) si
// no existe.
func (r *SupplierRepo) GetByIDSupplier(ctx context.Context, idSupplier string) (*entity.Supplier, error) {
	query := `SELECT` + supplierColumns + supplierFrom + ` WHERE s.id_supplier = $1 LIMIT 1`
	s, err := scanSupplier(r.pool.QueryRow(ctx, query, idSupplier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by id_supplier: %w", err)
	}
	return s, nil
}

// Update actualiza un proveedor existente (no toca created_by ni created_at).
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET id_supplier = $2, legal_name = $3, name = $4, tax_id = $5, country = $6,
			state_province = $7, city = $8, address = $9, zip_code = $10, phone = $11, email = $12,
			contact_name = $13, contact_role = $14, category = $15, payment_terms = $16, currency = $17,
			payment_method = $18, bank_account = $19, status = $20, updated_at = $21
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.IDSupplier, s.LegalName, s.Name, s.TaxID, s.Country,
		s.StateProvince, s.City, s.Address, s.ZipCode, s.Phone, s.Email,
		s.ContactName, s.ContactRole, s.Category, s.PaymentTerms, s.Currency,
		s.PaymentMethod, s.BankAccount, s.Status, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID. Devuelve false si no existía.
func (r *SupplierRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete supplier: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista proveedores filtrados en orden determinista. limit <= 0 trae
// todo (export CSV).
func (r *SupplierRepo) List(ctx context.Context, f repository.SupplierFilter, limit, offset int) ([]*entity.Supplier, error) {
	where, args := supplierWhere(f)
	query := `SELECT` + supplierColumns + supplierFrom + where + ` ORDER BY s.created_at ASC, s.id ASC`
	if limit > 0 {
		args = append(args, limit, offset)
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Count cuenta proveedores que cumplen los filtros.
func (r *SupplierRepo) Count(ctx context.Context, f repository.SupplierFilter) (int, error) {
	where, args := supplierWhere(f)
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers s`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return total, nil
}

// BulkCreate persiste el lote aceptado de la carga masiva con COPY en una
// sola operación. No pre-verifica unicidad fila a fila: un id_supplier
// duplicado (dentro del lote o contra la tabla) hace fallar el COPY completo
// y se reporta como ErrDuplicate.
func (r *SupplierRepo) BulkCreate(ctx context.Context, suppliers []*entity.Supplier) error {
	if len(suppliers) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, []any{
			s.ID, s.IDSupplier, s.LegalName, s.Name, s.TaxID, s.Country, s.StateProvince,
			s.City, s.Address, s.ZipCode, s.Phone, s.Email, s.ContactName, s.ContactRole,
			s.Category, s.PaymentTerms, s.Currency, s.PaymentMethod, s.BankAccount, s.Status,
			s.CreatedBy, s.CreatedAt, s.UpdatedAt,
		})
	}
	_, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"suppliers"},
		[]string{"id", "id_supplier", "legal_name", "name", "tax_id", "country", "state_province",
			"city", "address", "zip_code", "phone", "email", "contact_name", "contact_role",
			"category", "payment_terms", "currency", "payment_method", "bank_account", "status",
			"created_by", "created_at", "updated_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("bulk insert suppliers: %w", err)
	}
	return nil
}
