package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/masterdata-pro/internal/application/auth"
	"github.com/tu-usuario/masterdata-pro/internal/application/bulk"
	"github.com/tu-usuario/masterdata-pro/internal/application/dto"
	"github.com/tu-usuario/masterdata-pro/internal/application/usecase"
	"github.com/tu-usuario/masterdata-pro/internal/domain"
	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
	"github.com/tu-usuario/masterdata-pro/internal/domain/repository"
	apphttp "github.com/tu-usuario/masterdata-pro/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/masterdata-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "maria"
	testIssuer    = "masterdata-pro-test"
	testExpMin    = 60
)

// memUserRepo usuarios en memoria.
type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.users = append(r.users, u)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// memRoleRepo roles fijos para el usuario de prueba.
type memRoleRepo struct {
	roles []*entity.Role
}

func (r *memRoleRepo) ListByUser(_ context.Context, userID string) ([]*entity.Role, error) {
	if userID != testUserID {
		return nil, nil
	}
	return r.roles, nil
}

// memMaterialRepo materiales en memoria con la misma semántica de filtrado
// del adaptador real.
type memMaterialRepo struct {
	items []*entity.Material
}

func (r *memMaterialRepo) Create(_ context.Context, m *entity.Material) error {
	r.items = append(r.items, m)
	return nil
}

func (r *memMaterialRepo) GetByID(_ context.Context, id string) (*entity.Material, error) {
	for _, m := range r.items {
		if m.ID == id {
			c := *m
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memMaterialRepo) Update(_ context.Context, m *entity.Material) error {
	for i, existing := range r.items {
		if existing.ID == m.ID {
			c := *m
			r.items[i] = &c
			return nil
		}
	}
	return nil
}

func (r *memMaterialRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, m := range r.items {
		if m.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memMaterialRepo) List(_ context.Context, f repository.MaterialFilter, limit, offset int) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.items {
		if matchesMaterial(m, f) {
			out = append(out, m)
		}
	}
	if limit <= 0 {
		return out, nil
	}
	if offset >= len(out) {
		return nil, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (r *memMaterialRepo) Count(_ context.Context, f repository.MaterialFilter) (int, error) {
	n := 0
	for _, m := range r.items {
		if matchesMaterial(m, f) {
			n++
		}
	}
	return n, nil
}

func matchesMaterial(m *entity.Material, f repository.MaterialFilter) bool {
	like := func(field, q string) bool {
		return q == "" || strings.Contains(strings.ToLower(field), strings.ToLower(q))
	}
	return like(m.IDMaterial, f.IDMaterial) && like(m.Name, f.Name) &&
		like(m.MaterialType, f.MaterialType) && (f.Status == "" || m.Status == f.Status)
}

// memSupplierRepo proveedores en memoria.
type memSupplierRepo struct {
	items []*entity.Supplier
}

func (r *memSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	r.items = append(r.items, s)
	return nil
}

func (r *memSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	for _, s := range r.items {
		if s.ID == id {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memSupplierRepo) GetByIDSupplier(_ context.Context, idSupplier string) (*entity.Supplier, error) {
	for _, s := range r.items {
		if s.IDSupplier == idSupplier {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	for i, existing := range r.items {
		if existing.ID == s.ID {
			c := *s
			r.items[i] = &c
			return nil
		}
	}
	return nil
}

func (r *memSupplierRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, s := range r.items {
		if s.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memSupplierRepo) List(_ context.Context, f repository.SupplierFilter, limit, offset int) ([]*entity.Supplier, error) {
	like := func(field, q string) bool {
		return q == "" || strings.Contains(strings.ToLower(field), strings.ToLower(q))
	}
	var out []*entity.Supplier
	for _, s := range r.items {
		if like(s.IDSupplier, f.IDSupplier) && like(s.Name, f.Name) &&
			like(s.Country, f.Country) && (f.Status == "" || s.Status == f.Status) {
			out = append(out, s)
		}
	}
	if limit <= 0 {
		return out, nil
	}
	if offset >= len(out) {
		return nil, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (r *memSupplierRepo) Count(ctx context.Context, f repository.SupplierFilter) (int, error) {
	all, _ := r.List(ctx, f, 0, 0)
	return len(all), nil
}

func (r *memSupplierRepo) BulkCreate(_ context.Context, suppliers []*entity.Supplier) error {
	for _, s := range suppliers {
		for _, existing := range r.items {
			if existing.IDSupplier == s.IDSupplier {
				return domain.ErrDuplicate
			}
		}
	}
	r.items = append(r.items, suppliers...)
	return nil
}

// testEnv aplicación completa sobre repositorios en memoria.
type testEnv struct {
	app          *fiber.App
	userRepo     *memUserRepo
	materialRepo *memMaterialRepo
	supplierRepo *memSupplierRepo
}

// newTestEnv arma la app con el Router real y el usuario de prueba con los
// roles indicados.
func newTestEnv(roles ...*entity.Role) *testEnv {
	env := &testEnv{
		userRepo:     &memUserRepo{},
		materialRepo: &memMaterialRepo{},
		supplierRepo: &memSupplierRepo{},
	}
	roleRepo := &memRoleRepo{roles: roles}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(env.userRepo, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		MaterialUC:  usecase.NewMaterialUseCase(env.materialRepo),
		SupplierUC:  usecase.NewSupplierUseCase(env.supplierRepo),
		ImportUC:    bulk.NewSupplierImportUseCase(env.supplierRepo),
		Permissions: usecase.NewPermissionService(roleRepo),
		JWTSecret:   testJWTSecret,
	})
	env.app = app
	return env
}

func bearerToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func (env *testEnv) do(t *testing.T, method, path string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", bearerToken(t))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (env *testEnv) getJSON(t *testing.T, path string, out any) *http.Response {
	t.Helper()
	resp := env.do(t, http.MethodGet, path, nil, "")
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (env *testEnv) postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return env.do(t, http.MethodPost, path, bytes.NewReader(raw), fiber.MIMEApplicationJSON)
}

func materialsRole(level int) *entity.Role {
	return &entity.Role{RoleName: "rol-materiales", Materials: level}
}

func suppliersRole(level int) *entity.Role {
	return &entity.Role{RoleName: "rol-proveedores", Suppliers: level}
}

func materialBody() dto.MaterialForm {
	return dto.MaterialForm{
		IDMaterial:   "MAT-001",
		Name:         "Lámina de acero",
		Unit:         "kg",
		MaterialType: "Acero",
		Status:       "active",
	}
}

func supplierBody(id string) dto.SupplierForm {
	return dto.SupplierForm{
		IDSupplier:    id,
		LegalName:     "Aceros del Norte S.A.",
		Name:          "Aceros del Norte",
		TaxID:         "900123456-7",
		Country:       "Colombia",
		StateProvince: "Antioquia",
		City:          "Medellín",
		Address:       "Cra 45 #12-34",
		ZipCode:       "050001",
		Phone:         "6041234567",
		Email:         "compras@acerosn.co",
		ContactName:   "Laura Pérez",
		ContactRole:   "Jefe de compras",
		Category:      "Materias primas",
		PaymentTerms:  "30 días",
		Currency:      "COP",
		PaymentMethod: "Transferencia",
		BankAccount:   "123-456789-00",
		Status:        "active",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestRutasProtegidas_SinToken_Retorna401(t *testing.T) {
	env := newTestEnv(materialsRole(entity.LevelAdmin))

	req := httptest.NewRequest(http.MethodGet, "/materials/", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDashboard_MapaDePermisosYRoles(t *testing.T) {
	env := newTestEnv(
		&entity.Role{RoleName: "comprador", Suppliers: 2, Materials: 1},
		&entity.Role{RoleName: "auditor", Materials: 3, Reporting: 2},
	)

	var body dto.PermissionsResponse
	resp := env.getJSON(t, "/dashboard", &body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.ElementsMatch(t, []string{"comprador", "auditor"}, body.Roles)
	assert.Equal(t, 2, body.Permissions["suppliers"])
	assert.Equal(t, 3, body.Permissions["materials"])
	assert.Equal(t, 0, body.Permissions["sales"])
	// Todos los módulos aparecen, con o sin permiso.
	assert.Len(t, body.Permissions, len(entity.Modules))
}

func TestRegisterYLogin_FlujoCompleto(t *testing.T) {
	env := newTestEnv()

	resp := env.postJSON(t, "/auth/register", dto.RegisterRequest{
		Username: "nuevo",
		Email:    "nuevo@example.com",
		Password: "secreta123",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.postJSON(t, "/auth/login", dto.LoginRequest{Username: "nuevo", Password: "secreta123"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var login dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "nuevo", login.User.Username)

	resp = env.postJSON(t, "/auth/login", dto.LoginRequest{Username: "nuevo", Password: "incorrecta"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guards de permisos por módulo
// ──────────────────────────────────────────────────────────────────────────────

func TestNivel0_RedirigeAlDashboard(t *testing.T) {
	env := newTestEnv() // sin roles: todos los módulos en 0

	for _, path := range []string{"/materials/", "/suppliers/", "/materials/create"} {
		resp := env.do(t, http.MethodGet, path, nil, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/dashboard", resp.Header.Get("Location"), path)
	}
}

func TestNivel1_PuedeListarPeroNoCrear(t *testing.T) {
	env := newTestEnv(materialsRole(entity.LevelReadOnly))

	resp := env.do(t, http.MethodGet, "/materials/", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// El formulario y el POST de alta redirigen al listado, sin error.
	resp = env.do(t, http.MethodGet, "/materials/create", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/materials/", resp.Header.Get("Location"))

	resp = env.postJSON(t, "/materials/create", materialBody())
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/materials/", resp.Header.Get("Location"))
	assert.Empty(t, env.materialRepo.items, "nivel 1 no debe persistir nada")
}

func TestNivel2_CreaYEdita(t *testing.T) {
	env := newTestEnv(materialsRole(entity.LevelReadWrite))

	resp := env.postJSON(t, "/materials/create", materialBody())
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.MaterialResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "MAT-001", created.IDMaterial)

	form := materialBody()
	form.Name = "Lámina galvanizada"
	resp = env.postJSON(t, "/materials/"+created.ID+"/edit", form)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated dto.MaterialResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "Lámina galvanizada", updated.Name)
}

func TestCreate_Invalido_Retorna400ConDetalle(t *testing.T) {
	env := newTestEnv(materialsRole(entity.LevelReadWrite))

	form := materialBody()
	form.Name = ""
	resp := env.postJSON(t, "/materials/create", form)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "este campo es obligatorio", body.Errors["name"])
}

func TestEdit_Inexistente_Retorna404(t *testing.T) {
	env := newTestEnv(materialsRole(entity.LevelReadWrite))

	resp := env.getJSON(t, "/materials/no-existe/edit", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDelete_Nivel2_EliminaYRedirige(t *testing.T) {
	env := newTestEnv(materialsRole(entity.LevelReadWrite))

	resp := env.postJSON(t, "/materials/create", materialBody())
	var created dto.MaterialResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/materials/"+created.ID+"/delete", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/materials/", resp.Header.Get("Location"))
	assert.Empty(t, env.materialRepo.items)
}

func TestDelete_Nivel3_Bloqueado(t *testing.T) {
	// El borrado exige exactamente nivel 2: el nivel 3 se redirige sin borrar.
	env := newTestEnv(materialsRole(entity.LevelAdmin))

	resp := env.postJSON(t, "/materials/create", materialBody())
	var created dto.MaterialResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/materials/"+created.ID+"/delete", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/materials/", resp.Header.Get("Location"))
	assert.Len(t, env.materialRepo.items, 1, "nivel 3 no debe poder borrar")
}

func TestDelete_PorGET_NoTieneEfecto(t *testing.T) {
	env := newTestEnv(materialsRole(entity.LevelReadWrite))

	resp := env.postJSON(t, "/materials/create", materialBody())
	var created dto.MaterialResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/materials/"+created.ID+"/delete", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Len(t, env.materialRepo.items, 1, "el GET de borrado no debe borrar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado, export y carga masiva
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltraYPagina(t *testing.T) {
	env := newTestEnv(materialsRole(entity.LevelReadWrite))
	for i := 0; i < 12; i++ {
		form := materialBody()
		form.IDMaterial = "MAT-" + string(rune('A'+i))
		resp := env.postJSON(t, "/materials/create", form)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	var page dto.MaterialListResponse
	resp := env.getJSON(t, "/materials/?page=2", &page)
	resp.Body.Close()
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Page.Page)
	assert.Equal(t, 12, page.Page.TotalItems)

	resp = env.getJSON(t, "/materials/?id_material=MAT-A", &page)
	resp.Body.Close()
	assert.Len(t, page.Items, 1)
}

func TestExportCSV_DescargaConBOM(t *testing.T) {
	env := newTestEnv(materialsRole(entity.LevelReadWrite))
	resp := env.postJSON(t, "/materials/create", materialBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/materials/?export=csv", nil, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="Materials.csv"`)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "\ufeff"))
	assert.Contains(t, string(raw), "MAT-001")
}

func TestBulkTemplate_SinBOM(t *testing.T) {
	env := newTestEnv(suppliersRole(entity.LevelReadOnly))

	resp := env.do(t, http.MethodGet, "/suppliers/bulk/template", nil, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(string(raw), "\ufeff"))
	assert.True(t, strings.HasPrefix(string(raw), "id_supplier,legal_name,"))
}

func multipartCSV(t *testing.T, content string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("csv_file", "suppliers.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestBulkCreate_ExitoParcial(t *testing.T) {
	env := newTestEnv(suppliersRole(entity.LevelReadWrite))

	csv := strings.Join(bulk.ImportHeaders, ",") + "\n" +
		"SUP-001,Legal SA,Proveedor,900111222-3,Colombia,Antioquia,Medellín,Cra 1 #2-3,050001,6040001122,a@b.co,Ana,Compras,Insumos,30 días,COP,Transferencia,111-222,active\n" +
		"SUP-002,Legal SA,Proveedor,900111222-3,Colombia,Antioquia,Medellín,Cra 1 #2-3,050001,6040001122,,Ana,Compras,Insumos,30 días,COP,Transferencia,111-222,active\n"
	body, contentType := multipartCSV(t, csv)

	resp := env.do(t, http.MethodPost, "/suppliers/bulk_create", body, contentType)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.BulkImportResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 1, result.Rejected)
	assert.Equal(t, 2, result.Total)
	assert.Len(t, env.supplierRepo.items, 1)
	assert.Equal(t, "maria", result.Created[0].CreatedBy)
}

func TestBulkCreate_LoteConDuplicado_Retorna409(t *testing.T) {
	env := newTestEnv(suppliersRole(entity.LevelReadWrite))

	resp := env.postJSON(t, "/suppliers/create", supplierBody("SUP-001"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	csv := strings.Join(bulk.ImportHeaders, ",") + "\n" +
		"SUP-001,Legal SA,Proveedor,900111222-3,Colombia,Antioquia,Medellín,Cra 1 #2-3,050001,6040001122,a@b.co,Ana,Compras,Insumos,30 días,COP,Transferencia,111-222,active\n"
	body, contentType := multipartCSV(t, csv)

	resp = env.do(t, http.MethodPost, "/suppliers/bulk_create", body, contentType)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Len(t, env.supplierRepo.items, 1, "el lote fallido no debe persistir filas")
}

func TestBulkCreate_SinArchivo_Retorna400(t *testing.T) {
	env := newTestEnv(suppliersRole(entity.LevelReadWrite))

	resp := env.do(t, http.MethodPost, "/suppliers/bulk_create", nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSupplierCreate_Duplicado_Retorna400ConDetalle(t *testing.T) {
	env := newTestEnv(suppliersRole(entity.LevelReadWrite))

	resp := env.postJSON(t, "/suppliers/create", supplierBody("SUP-001"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.postJSON(t, "/suppliers/create", supplierBody("SUP-001"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ya existe un proveedor con este identificador", body.Errors["id_supplier"])
}
