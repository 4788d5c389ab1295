package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/masterdata-pro/internal/application/dto"
	"github.com/tu-usuario/masterdata-pro/internal/application/validate"
	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
	"github.com/tu-usuario/masterdata-pro/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD, listado filtrado y export de proveedores.
// La carga masiva vive aparte (application/bulk) pero comparte el validador y
// SupplierFromForm para que ambas rutas acepten y rechacen lo mismo.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// SupplierFromForm construye la entidad desde un formulario YA validado.
// ZipCode y Phone pasaron la regla integer (el mismo strconv.Atoi), así que
// la conversión no puede fallar.
func SupplierFromForm(in dto.SupplierForm, createdBy string, now time.Time) *entity.Supplier {
	zip, _ := strconv.Atoi(in.ZipCode)
	phone, _ := strconv.Atoi(in.Phone)
	s := &entity.Supplier{
		ID:            uuid.New().String(),
		IDSupplier:    in.IDSupplier,
		LegalName:     in.LegalName,
		Name:          in.Name,
		TaxID:         in.TaxID,
		Country:       in.Country,
		StateProvince: in.StateProvince,
		City:          in.City,
		Address:       in.Address,
		ZipCode:       zip,
		Phone:         phone,
		Email:         in.Email,
		ContactName:   in.ContactName,
		ContactRole:   in.ContactRole,
		Category:      in.Category,
		PaymentTerms:  in.PaymentTerms,
		Currency:      in.Currency,
		PaymentMethod: in.PaymentMethod,
		BankAccount:   in.BankAccount,
		Status:        in.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if createdBy != "" {
		s.CreatedBy = &createdBy
	}
	return s
}

// Create valida y persiste un proveedor. A diferencia de la carga masiva, el
// alta individual sí verifica que id_supplier no exista ya.
func (uc *SupplierUseCase) Create(ctx context.Context, createdBy string, in dto.SupplierForm) (*dto.SupplierResponse, map[string]string, error) {
	fieldErrs := validate.Struct(in)
	if fieldErrs == nil {
		existing, err := uc.repo.GetByIDSupplier(ctx, in.IDSupplier)
		if err != nil {
			return nil, nil, err
		}
		if existing != nil {
			fieldErrs = map[string]string{}
			validate.Append(fieldErrs, "id_supplier", "ya existe un proveedor con este identificador")
		}
	}
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}
	supplier := SupplierFromForm(in, createdBy, time.Now())
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, nil, err
	}
	return toSupplierResponse(supplier), nil, nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// Update valida y actualiza un proveedor; id_supplier debe seguir sin chocar
// con otro registro. Devuelve (nil, nil, nil) si el id no existe.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.SupplierForm) (*dto.SupplierResponse, map[string]string, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if supplier == nil {
		return nil, nil, nil
	}
	fieldErrs := validate.Struct(in)
	if fieldErrs == nil && in.IDSupplier != supplier.IDSupplier {
		existing, err := uc.repo.GetByIDSupplier(ctx, in.IDSupplier)
		if err != nil {
			return nil, nil, err
		}
		if existing != nil {
			fieldErrs = map[string]string{}
			validate.Append(fieldErrs, "id_supplier", "ya existe un proveedor con este identificador")
		}
	}
	if fieldErrs != nil {
		return nil, fieldErrs, nil
	}
	zip, _ := strconv.Atoi(in.ZipCode)
	phone, _ := strconv.Atoi(in.Phone)
	supplier.IDSupplier = in.IDSupplier
	supplier.LegalName = in.LegalName
	supplier.Name = in.Name
	supplier.TaxID = in.TaxID
	supplier.Country = in.Country
	supplier.StateProvince = in.StateProvince
	supplier.City = in.City
	supplier.Address = in.Address
	supplier.ZipCode = zip
	supplier.Phone = phone
	supplier.Email = in.Email
	supplier.ContactName = in.ContactName
	supplier.ContactRole = in.ContactRole
	supplier.Category = in.Category
	supplier.PaymentTerms = in.PaymentTerms
	supplier.Currency = in.Currency
	supplier.PaymentMethod = in.PaymentMethod
	supplier.BankAccount = in.BankAccount
	supplier.Status = in.Status
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, nil, err
	}
	return toSupplierResponse(supplier), nil, nil
}

// Delete elimina un proveedor. Devuelve false si el id no existía.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

// List devuelve una página de proveedores filtrados.
func (uc *SupplierUseCase) List(ctx context.Context, f repository.SupplierFilter, page int) (*dto.SupplierListResponse, error) {
	total, err := uc.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	meta := pageMeta(page, total)
	offset := (meta.Page - 1) * PageSize
	list, err := uc.repo.List(ctx, f, PageSize, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{Items: items, Page: meta}, nil
}

// supplierExportHeader encabezado fijo del export de proveedores. El segundo
// nombre va en crudo; los reportes de los clientes ya dependen de ese texto.
var supplierExportHeader = []string{
	"ID Supplier", "legal_name", "Name", "Tax ID", "Country", "State/Province",
	"City", "Address", "Zip Code", "Phone", "Email", "Contact Name", "Contact Role",
	"Category", "Payment Terms", "Currency", "Payment Method", "Bank Account", "Status",
	"Created By", "Created At", "Updated At",
}

// ExportCSV escribe el set filtrado completo (sin paginar) como CSV con BOM
// UTF-8 y encabezado fijo.
func (uc *SupplierUseCase) ExportCSV(ctx context.Context, f repository.SupplierFilter, w io.Writer) error {
	list, err := uc.repo.List(ctx, f, 0, 0)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\ufeff"); err != nil {
		return fmt.Errorf("escribir BOM: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(supplierExportHeader); err != nil {
		return fmt.Errorf("escribir encabezado: %w", err)
	}
	for _, s := range list {
		record := []string{
			s.IDSupplier,
			s.LegalName,
			s.Name,
			s.TaxID,
			s.Country,
			s.StateProvince,
			s.City,
			s.Address,
			strconv.Itoa(s.ZipCode),
			strconv.Itoa(s.Phone),
			s.Email,
			s.ContactName,
			s.ContactRole,
			s.Category,
			s.PaymentTerms,
			s.Currency,
			s.PaymentMethod,
			s.BankAccount,
			s.Status,
			createdByOrNA(s.CreatedByName),
			s.CreatedAt.Format(timestampLayout),
			s.UpdatedAt.Format(timestampLayout),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("escribir fila: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
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
		CreatedBy:     createdByOrNA(s.CreatedByName),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
