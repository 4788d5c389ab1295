package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/masterdata-pro/internal/application/dto"
	"github.com/tu-usuario/masterdata-pro/internal/application/validate"
	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
	"github.com/tu-usuario/masterdata-pro/internal/domain/repository"
)

// PageSize tamaño fijo de página de los listados.
const PageSize = 10

// timestampLayout formato de fechas en los exports CSV.
const timestampLayout = "2006-01-02 15:04:05"

// createdByOrNA resuelve el username del autor o el literal N/A si la fila
// quedó sin autor (usuario eliminado).
func createdByOrNA(name string) string {
	if name == "" {
		return "N/A"
	}
	return name
}

// pageMeta calcula la paginación con clamping: páginas fuera de rango caen a
// la última página válida, valores menores a 1 caen a la primera.
func pageMeta(page, total int) dto.PageMeta {
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return dto.PageMeta{Page: page, PageSize: PageSize, TotalPages: totalPages, TotalItems: total}
}

// MaterialUseCase casos de uso CRUD, listado filtrado y export de materiales.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// Create valida y persiste un material con created_by = usuario actual.
// Si la entrada es inválida devuelve el detalle campo → mensaje.
func (uc *MaterialUseCase) Create(ctx context.Context, createdBy string, in dto.MaterialForm) (*dto.MaterialResponse, map[string]string, error) {
	if fieldErrs := validate.Struct(in); fieldErrs != nil {
		return nil, fieldErrs, nil
	}
	now := time.Now()
	material := &entity.Material{
		ID:           uuid.New().String(),
		IDMaterial:   in.IDMaterial,
		Name:         in.Name,
		Description:  in.Description,
		Unit:         in.Unit,
		MaterialType: in.MaterialType,
		Status:       in.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if createdBy != "" {
		material.CreatedBy = &createdBy
	}
	if err := uc.repo.Create(ctx, material); err != nil {
		return nil, nil, err
	}
	return toMaterialResponse(material), nil, nil
}

// GetByID obtiene un material por ID. Devuelve (nil, nil) si no existe.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	return toMaterialResponse(material), nil
}

// Update valida y actualiza un material existente; conserva autor y fecha de
// creación. Devuelve (nil, nil, nil) si el id no existe.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.MaterialForm) (*dto.MaterialResponse, map[string]string, error) {
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if material == nil {
		return nil, nil, nil
	}
	if fieldErrs := validate.Struct(in); fieldErrs != nil {
		return nil, fieldErrs, nil
	}
	material.IDMaterial = in.IDMaterial
	material.Name = in.Name
	material.Description = in.Description
	material.Unit = in.Unit
	material.MaterialType = in.MaterialType
	material.Status = in.Status
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, material); err != nil {
		return nil, nil, err
	}
	return toMaterialResponse(material), nil, nil
}

// Delete elimina un material. Devuelve false si el id no existía.
func (uc *MaterialUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

// List devuelve una página de materiales filtrados (AND de los filtros,
// texto sin distinguir mayúsculas, status exacto).
func (uc *MaterialUseCase) List(ctx context.Context, f repository.MaterialFilter, page int) (*dto.MaterialListResponse, error) {
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
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{Items: items, Page: meta}, nil
}

// materialExportHeader encabezado fijo, legible, del export de materiales.
var materialExportHeader = []string{
	"ID Material", "Name", "Description", "Unit", "Type", "Status",
	"Created By", "Created At", "Updated At",
}

// ExportCSV escribe el set filtrado completo (sin paginar) como CSV con BOM
// UTF-8 y encabezado fijo.
func (uc *MaterialUseCase) ExportCSV(ctx context.Context, f repository.MaterialFilter, w io.Writer) error {
	list, err := uc.repo.List(ctx, f, 0, 0)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\ufeff"); err != nil {
		return fmt.Errorf("escribir BOM: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(materialExportHeader); err != nil {
		return fmt.Errorf("escribir encabezado: %w", err)
	}
	for _, m := range list {
		record := []string{
			m.IDMaterial,
			m.Name,
			m.Description,
			m.Unit,
			m.MaterialType,
			m.Status,
			createdByOrNA(m.CreatedByName),
			m.CreatedAt.Format(timestampLayout),
			m.UpdatedAt.Format(timestampLayout),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("escribir fila: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{
		ID:           m.ID,
		IDMaterial:   m.IDMaterial,
		Name:         m.Name,
		Description:  m.Description,
		Unit:         m.Unit,
		MaterialType: m.MaterialType,
		Status:       m.Status,
		CreatedBy:    createdByOrNA(m.CreatedByName),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
