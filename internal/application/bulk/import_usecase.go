// Package bulk implementa la carga masiva de proveedores vía CSV: decodifica
// el archivo, normaliza encabezados, valida fila a fila con las mismas reglas
// del alta individual y persiste lo aceptado en un solo lote.
package bulk

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/tu-usuario/masterdata-pro/internal/application/dto"
	"github.com/tu-usuario/masterdata-pro/internal/application/usecase"
	"github.com/tu-usuario/masterdata-pro/internal/application/validate"
	"github.com/tu-usuario/masterdata-pro/internal/domain"
	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
	"github.com/tu-usuario/masterdata-pro/internal/domain/repository"
)

// ImportHeaders encabezado canónico del CSV de carga (y de la plantilla
// descargable): todos los campos importables, en minúscula.
var ImportHeaders = []string{
	"id_supplier", "legal_name", "name", "tax_id", "country", "state_province",
	"city", "address", "zip_code", "phone", "email", "contact_name",
	"contact_role", "category", "payment_terms", "currency", "payment_method",
	"bank_account", "status",
}

// SupplierImportUseCase procesa el CSV de proveedores subido por el usuario.
type SupplierImportUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierImportUseCase construye el caso de uso de carga masiva.
func NewSupplierImportUseCase(repo repository.SupplierRepository) *SupplierImportUseCase {
	return &SupplierImportUseCase{repo: repo}
}

// Import ejecuta la carga completa:
//
//  1. Decodifica como UTF-8 y, si falla, reintenta como ISO-8859-1; si
//     tampoco, aborta con ErrUnreadableEncoding sin persistir nada.
//  2. Quita el BOM del primer encabezado y normaliza nombres (trim +
//     minúsculas).
//  3. Valida cada fila con las reglas del formulario individual; las válidas
//     se acumulan en memoria, las inválidas van al reporte con su número de
//     fila (encabezado = 1), datos crudos y detalle campo → mensaje.
//  4. Persiste todo lo aceptado en UNA operación por lotes. Ese lote no
//     re-verifica unicidad de id_supplier fila a fila; un duplicado dentro
//     del archivo o contra la base aflora como error del lote completo.
//
// El éxito parcial es normal: las filas aceptadas se persisten aunque otras
// hayan sido rechazadas.
func (uc *SupplierImportUseCase) Import(ctx context.Context, raw []byte, createdByID, createdByName string) (*dto.BulkImportResult, error) {
	text, err := decode(raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // filas cortas se validan, no rompen el parseo
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidInput)
	}

	headers := normalizeHeaders(records[0])

	var accepted []*entity.Supplier
	result := &dto.BulkImportResult{
		Created: []dto.SupplierResponse{},
		Errors:  []dto.RejectedRow{},
	}
	now := time.Now()
	for i, record := range records[1:] {
		row := rowMap(headers, record)
		form := formFromRow(row)
		// Fila de negocio: encabezado es la 1, la primera de datos la 2.
		rowNumber := i + 2
		if fieldErrs := validate.Struct(form); fieldErrs != nil {
			result.Errors = append(result.Errors, dto.RejectedRow{
				Row:    rowNumber,
				Data:   row,
				Errors: fieldErrs,
			})
			continue
		}
		supplier := usecase.SupplierFromForm(form, createdByID, now)
		supplier.CreatedByName = createdByName
		accepted = append(accepted, supplier)
	}

	if len(accepted) > 0 {
		if err := uc.repo.BulkCreate(ctx, accepted); err != nil {
			return nil, err
		}
	}

	for _, s := range accepted {
		result.Created = append(result.Created, supplierResponse(s))
	}
	result.Accepted = len(accepted)
	result.Rejected = len(result.Errors)
	result.Total = result.Accepted + result.Rejected
	result.Message = fmt.Sprintf("Se importaron %d proveedores correctamente", result.Accepted)
	return result, nil
}

// decode intenta UTF-8 y luego ISO-8859-1, en ese orden.
func decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", domain.ErrUnreadableEncoding
	}
	return string(decoded), nil
}

// normalizeHeaders quita el BOM del primer campo y pasa cada nombre por trim
// y minúsculas, para aceptar encabezados como "<BOM>ID_Supplier".
func normalizeHeaders(record []string) []string {
	headers := make([]string, len(record))
	for i, h := range record {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return headers
}

// rowMap arma el diccionario encabezado → valor recortado de una fila.
func rowMap(headers, record []string) map[string]string {
	row := make(map[string]string, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		if i < len(record) {
			row[h] = strings.TrimSpace(record[i])
		} else {
			row[h] = ""
		}
	}
	return row
}

func formFromRow(row map[string]string) dto.SupplierForm {
	return dto.SupplierForm{
		IDSupplier:    row["id_supplier"],
		LegalName:     row["legal_name"],
		Name:          row["name"],
		TaxID:         row["tax_id"],
		Country:       row["country"],
		StateProvince: row["state_province"],
		City:          row["city"],
		Address:       row["address"],
		ZipCode:       row["zip_code"],
		Phone:         row["phone"],
		Email:         row["email"],
		ContactName:   row["contact_name"],
		ContactRole:   row["contact_role"],
		Category:      row["category"],
		PaymentTerms:  row["payment_terms"],
		Currency:      row["currency"],
		PaymentMethod: row["payment_method"],
		BankAccount:   row["bank_account"],
		Status:        row["status"],
	}
}

func supplierResponse(s *entity.Supplier) dto.SupplierResponse {
	createdBy := s.CreatedByName
	if createdBy == "" {
		createdBy = "N/A"
	}
	return dto.SupplierResponse{
		ID:            s.ID,
		IDSupplier:    s.IDSupplier,
		LegalName:     s.LegalName,
		Name:          s.Name,
		TaxID:         s.TaxID,
		Country:       s.Country,
		StateProvince: s.StateProvince,
		City:          s.City,
		Address:       s.Address,
		ZipCode:       s.ZipCode,
		Phone:         s.Phone,
		Email:         s.Email,
		ContactName:   s.ContactName,
		ContactRole:   s.ContactRole,
		Category:      s.Category,
		PaymentTerms:  s.PaymentTerms,
		Currency:      s.Currency,
		PaymentMethod: s.PaymentMethod,
		BankAccount:   s.BankAccount,
		Status:        s.Status,
		CreatedBy:     createdBy,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
