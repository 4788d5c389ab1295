package entity

import "time"

// Supplier entidad maestra de proveedores. id_supplier es único a nivel de
// esquema; la carga masiva NO lo pre-valida fila a fila (ver DESIGN.md).
type Supplier struct {
	ID            string
	IDSupplier    string
	LegalName     string
	Name          string
	TaxID         string
	Country       string
	StateProvince string
	City          string
	Address       string
	ZipCode       int
	Phone         int
	Email         string
	ContactName   string
	ContactRole   string
	Category      string
	PaymentTerms  string
	Currency      string
	PaymentMethod string
	BankAccount   string
	Status        string

	CreatedBy     *string
	CreatedByName string // username del autor para listados y export (no persistido)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
