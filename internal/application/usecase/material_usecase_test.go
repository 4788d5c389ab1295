package usecase_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/masterdata-pro/internal/application/dto"
	"github.com/tu-usuario/masterdata-pro/internal/application/usecase"
	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
	"github.com/tu-usuario/masterdata-pro/internal/domain/repository"
)

// fakeMaterialRepo repositorio en memoria que replica la semántica de
// filtrado del adaptador real: texto parcial sin mayúsculas, status exacto.
type fakeMaterialRepo struct {
	items []*entity.Material
}

func (f *fakeMaterialRepo) Create(_ context.Context, m *entity.Material) error {
	f.items = append(f.items, m)
	return nil
}

func (f *fakeMaterialRepo) GetByID(_ context.Context, id string) (*entity.Material, error) {
	for _, m := range f.items {
		if m.ID == id {
			copy := *m
			return &copy, nil
		}
	}
	return nil, nil
}

func (f *fakeMaterialRepo) Update(_ context.Context, m *entity.Material) error {
	for i, existing := range f.items {
		if existing.ID == m.ID {
			copy := *m
			f.items[i] = &copy
			return nil
		}
	}
	return nil
}

func (f *fakeMaterialRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, m := range f.items {
		if m.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func matchMaterial(m *entity.Material, f repository.MaterialFilter) bool {
	contains := func(field, filter string) bool {
		return filter == "" || strings.Contains(strings.ToLower(field), strings.ToLower(filter))
	}
	if !contains(m.IDMaterial, f.IDMaterial) || !contains(m.Name, f.Name) || !contains(m.MaterialType, f.MaterialType) {
		return false
	}
	return f.Status == "" || m.Status == f.Status
}

func (f *fakeMaterialRepo) List(_ context.Context, filter repository.MaterialFilter, limit, offset int) ([]*entity.Material, error) {
	var filtered []*entity.Material
	for _, m := range f.items {
		if matchMaterial(m, filter) {
			filtered = append(filtered, m)
		}
	}
	if limit <= 0 {
		return filtered, nil
	}
	if offset >= len(filtered) {
		return nil, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], nil
}

func (f *fakeMaterialRepo) Count(_ context.Context, filter repository.MaterialFilter) (int, error) {
	n := 0
	for _, m := range f.items {
		if matchMaterial(m, filter) {
			n++
		}
	}
	return n, nil
}

func validMaterialForm() dto.MaterialForm {
	return dto.MaterialForm{
		IDMaterial:   "MAT-001",
		Name:         "Lámina de acero",
		Description:  "Calibre 18",
		Unit:         "kg",
		MaterialType: "Acero",
		Status:       "active",
	}
}

func TestMaterialCreate_AsignaAuditoria(t *testing.T) {
	repo := &fakeMaterialRepo{}
	uc := usecase.NewMaterialUseCase(repo)

	out, fieldErrs, err := uc.Create(context.Background(), "user-1", validMaterialForm())
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, out.CreatedAt, out.UpdatedAt)
	require.Len(t, repo.items, 1)
	require.NotNil(t, repo.items[0].CreatedBy)
	assert.Equal(t, "user-1", *repo.items[0].CreatedBy)
}

func TestMaterialCreate_SinAutor_CreatedByNulo(t *testing.T) {
	repo := &fakeMaterialRepo{}
	uc := usecase.NewMaterialUseCase(repo)

	out, fieldErrs, err := uc.Create(context.Background(), "", validMaterialForm())
	require.NoError(t, err)
	require.Nil(t, fieldErrs)

	assert.Nil(t, repo.items[0].CreatedBy)
	assert.Equal(t, "N/A", out.CreatedBy)
}

func TestMaterialCreate_Invalido_NoPersiste(t *testing.T) {
	repo := &fakeMaterialRepo{}
	uc := usecase.NewMaterialUseCase(repo)

	form := validMaterialForm()
	form.Name = ""
	out, fieldErrs, err := uc.Create(context.Background(), "user-1", form)
	require.NoError(t, err)

	assert.Nil(t, out)
	assert.Equal(t, "este campo es obligatorio", fieldErrs["name"])
	assert.Empty(t, repo.items)
}

func TestMaterialUpdate_Inexistente_RetornaNil(t *testing.T) {
	uc := usecase.NewMaterialUseCase(&fakeMaterialRepo{})

	out, fieldErrs, err := uc.Update(context.Background(), "no-existe", validMaterialForm())
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Nil(t, fieldErrs)
}

func TestMaterialUpdate_ConservaAutorYFechaDeCreacion(t *testing.T) {
	repo := &fakeMaterialRepo{}
	uc := usecase.NewMaterialUseCase(repo)

	created, _, err := uc.Create(context.Background(), "user-1", validMaterialForm())
	require.NoError(t, err)

	form := validMaterialForm()
	form.Name = "Lámina galvanizada"
	out, fieldErrs, err := uc.Update(context.Background(), created.ID, form)
	require.NoError(t, err)
	require.Nil(t, fieldErrs)

	assert.Equal(t, "Lámina galvanizada", out.Name)
	assert.Equal(t, created.CreatedAt, out.CreatedAt)
	require.NotNil(t, repo.items[0].CreatedBy)
	assert.Equal(t, "user-1", *repo.items[0].CreatedBy)
}

func seedMaterials(t *testing.T, uc *usecase.MaterialUseCase, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		form := validMaterialForm()
		form.IDMaterial = fmt.Sprintf("MAT-%03d", i)
		_, fieldErrs, err := uc.Create(context.Background(), "user-1", form)
		require.NoError(t, err)
		require.Nil(t, fieldErrs)
	}
}

func TestMaterialList_PaginaDe10(t *testing.T) {
	uc := usecase.NewMaterialUseCase(&fakeMaterialRepo{})
	seedMaterials(t, uc, 15)

	out, err := uc.List(context.Background(), repository.MaterialFilter{}, 1)
	require.NoError(t, err)

	assert.Len(t, out.Items, 10)
	assert.Equal(t, 1, out.Page.Page)
	assert.Equal(t, 2, out.Page.TotalPages)
	assert.Equal(t, 15, out.Page.TotalItems)

	out, err = uc.List(context.Background(), repository.MaterialFilter{}, 2)
	require.NoError(t, err)
	assert.Len(t, out.Items, 5)
}

func TestMaterialList_PaginaFueraDeRango_SeAjusta(t *testing.T) {
	uc := usecase.NewMaterialUseCase(&fakeMaterialRepo{})
	seedMaterials(t, uc, 15)

	// Página demasiado alta cae a la última.
	out, err := uc.List(context.Background(), repository.MaterialFilter{}, 99)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Page.Page)
	assert.Len(t, out.Items, 5)

	// Página menor a 1 cae a la primera.
	out, err = uc.List(context.Background(), repository.MaterialFilter{}, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page.Page)
	assert.Len(t, out.Items, 10)
}

func TestMaterialList_SinResultados_UnaPaginaVacia(t *testing.T) {
	uc := usecase.NewMaterialUseCase(&fakeMaterialRepo{})

	out, err := uc.List(context.Background(), repository.MaterialFilter{Name: "nada"}, 1)
	require.NoError(t, err)

	assert.Empty(t, out.Items)
	assert.Equal(t, 1, out.Page.Page)
	assert.Equal(t, 1, out.Page.TotalPages)
	assert.Equal(t, 0, out.Page.TotalItems)
}

func TestMaterialExportCSV_BOMEncabezadoYFilas(t *testing.T) {
	uc := usecase.NewMaterialUseCase(&fakeMaterialRepo{})
	seedMaterials(t, uc, 12)

	var buf bytes.Buffer
	require.NoError(t, uc.ExportCSV(context.Background(), repository.MaterialFilter{}, &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\ufeff"), "el export debe arrancar con BOM UTF-8")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Encabezado + las 12 filas: el export ignora la paginación.
	require.Len(t, lines, 13)
	assert.Equal(t, "\ufeffID Material,Name,Description,Unit,Type,Status,Created By,Created At,Updated At", lines[0])
	assert.Contains(t, lines[1], "MAT-000")
}

func TestMaterialExportCSV_RespetaFiltros(t *testing.T) {
	repo := &fakeMaterialRepo{}
	uc := usecase.NewMaterialUseCase(repo)
	seedMaterials(t, uc, 3)
	form := validMaterialForm()
	form.IDMaterial = "ESP-999"
	form.Status = "inactive"
	_, _, err := uc.Create(context.Background(), "user-1", form)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, uc.ExportCSV(context.Background(), repository.MaterialFilter{Status: "inactive"}, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "ESP-999")
}
