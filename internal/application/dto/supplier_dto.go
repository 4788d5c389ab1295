package dto

import "time"

// SupplierForm datos del formulario de creación/edición de proveedores.
// ZipCode y Phone llegan como texto (formulario o celda CSV) y se exigen
// enteros; la conversión ocurre al construir la entidad.
// Estas mismas reglas las aplica fila a fila la carga masiva.
type SupplierForm struct {
	IDSupplier    string `json:"id_supplier" form:"id_supplier" validate:"required,max=50"`
	LegalName     string `json:"legal_name" form:"legal_name" validate:"required,max=150"`
	Name          string `json:"name" form:"name" validate:"required,max=100"`
	TaxID         string `json:"tax_id" form:"tax_id" validate:"required,max=30"`
	Country       string `json:"country" form:"country" validate:"max=60"`
	StateProvince string `json:"state_province" form:"state_province" validate:"max=60"`
	City          string `json:"city" form:"city" validate:"max=100"`
	Address       string `json:"address" form:"address" validate:"required,max=150"`
	ZipCode       string `json:"zip_code" form:"zip_code" validate:"required,integer"`
	Phone         string `json:"phone" form:"phone" validate:"required,integer"`
	Email         string `json:"email" form:"email" validate:"required,email,max=50"`
	ContactName   string `json:"contact_name" form:"contact_name" validate:"required,max=150"`
	ContactRole   string `json:"contact_role" form:"contact_role" validate:"required,max=150"`
	Category      string `json:"category" form:"category" validate:"required,max=150"`
	PaymentTerms  string `json:"payment_terms" form:"payment_terms" validate:"required,max=150"`
	Currency      string `json:"currency" form:"currency" validate:"required,max=150"`
	PaymentMethod string `json:"payment_method" form:"payment_method" validate:"required,max=150"`
	BankAccount   string `json:"bank_account" form:"bank_account" validate:"required,max=150"`
	Status        string `json:"status" form:"status" validate:"required,max=50"`
}

// SupplierResponse proveedor con campos de auditoría resueltos.
type SupplierResponse struct {
	ID            string    `json:"id"`
	IDSupplier    string    `json:"id_supplier"`
	LegalName     string    `json:"legal_name"`
	Name          string    `json:"name"`
	TaxID         string    `json:"tax_id"`
	Country       string    `json:"country"`
	StateProvince string    `json:"state_province"`
	City          string    `json:"city"`
	Address       string    `json:"address"`
	ZipCode       int       `json:"zip_code"`
	Phone         int       `json:"phone"`
	Email         string    `json:"email"`
	ContactName   string    `json:"contact_name"`
	ContactRole   string    `json:"contact_role"`
	Category      string    `json:"category"`
	PaymentTerms  string    `json:"payment_terms"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	BankAccount   string    `json:"bank_account"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"created_by"` // username o "N/A"
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SupplierListResponse página de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageMeta           `json:"page"`
}
