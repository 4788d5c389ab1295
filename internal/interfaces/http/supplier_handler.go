package http

import (
	"bytes"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/masterdata-pro/internal/application/bulk"
	"github.com/tu-usuario/masterdata-pro/internal/application/dto"
	"github.com/tu-usuario/masterdata-pro/internal/application/usecase"
	"github.com/tu-usuario/masterdata-pro/internal/domain"
	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
	"github.com/tu-usuario/masterdata-pro/internal/domain/repository"
	"github.com/tu-usuario/masterdata-pro/pkg/metrics"
)

const suppliersListPath = "/suppliers/"

// SupplierHandler maneja las peticiones HTTP del módulo de proveedores
// (protegido; el guard de nivel 0 vive en el router). Incluye la carga masiva
// por CSV y la plantilla descargable.
type SupplierHandler struct {
	uc       *usecase.SupplierUseCase
	importUC *bulk.SupplierImportUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, importUC *bulk.SupplierImportUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc, importUC: importUC}
}

func (h *SupplierHandler) level(c *fiber.Ctx) int {
	return GetPermissions(c).Level(entity.ModuleSuppliers)
}

// canWrite exige nivel 2 o superior. Nivel 1 (solo lectura) se redirige al
// listado en silencio, sin cuerpo de error.
func (h *SupplierHandler) canWrite(c *fiber.Ctx) bool {
	return h.level(c) >= entity.LevelReadWrite
}

func supplierFilterFromQuery(c *fiber.Ctx) repository.SupplierFilter {
	return repository.SupplierFilter{
		IDSupplier: c.Query("id_supplier"),
		Name:       c.Query("name"),
		Country:    c.Query("country"),
		Status:     c.Query("status"),
	}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id_supplier  query  string  false  "Filtro parcial por código"
// @Param        name         query  string  false  "Filtro parcial por nombre"
// @Param        country      query  string  false  "Filtro parcial por país"
// @Param        status       query  string  false  "Filtro exacto por estado"
// @Param        page         query  int     false  "Página (tamaño fijo 10)"  default(1)
// @Param        export       query  string  false  "export=csv descarga el set filtrado completo"
// @Success      200  {object}  dto.SupplierListResponse
// @Router       /suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	f := supplierFilterFromQuery(c)
	if c.Query("export") == "csv" {
		return h.exportCSV(c, f)
	}
	page := c.QueryInt("page", 1)
	out, err := h.uc.List(c.Context(), f, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.RecordOperation("supplier", "list")
	return c.JSON(out)
}

func (h *SupplierHandler) exportCSV(c *fiber.Ctx, f repository.SupplierFilter) error {
	var buf bytes.Buffer
	if err := h.uc.ExportCSV(c.Context(), f, &buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.RecordOperation("supplier", "export")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="Suppliers.csv"`)
	return c.Send(buf.Bytes())
}

// CreateForm godoc
// @Summary      Formulario de alta de proveedor
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SupplierForm
// @Router       /suppliers/create [get]
func (h *SupplierHandler) CreateForm(c *fiber.Ctx) error {
	if !h.canWrite(c) {
		metrics.PermissionDenied.WithLabelValues(entity.ModuleSuppliers).Inc()
		return c.Redirect(suppliersListPath, fiber.StatusFound)
	}
	return c.JSON(dto.SupplierForm{})
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupplierForm  true  "Datos del proveedor"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /suppliers/create [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	if !h.canWrite(c) {
		metrics.PermissionDenied.WithLabelValues(entity.ModuleSuppliers).Inc()
		return c.Redirect(suppliersListPath, fiber.StatusFound)
	}
	var in dto.SupplierForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, fieldErrs, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un proveedor con este identificador"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Errors: fieldErrs})
	}
	metrics.RecordOperation("supplier", "create")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// EditForm godoc
// @Summary      Formulario de edición con los datos actuales
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /suppliers/{id}/edit [get]
func (h *SupplierHandler) EditForm(c *fiber.Ctx) error {
	if !h.canWrite(c) {
		metrics.PermissionDenied.WithLabelValues(entity.ModuleSuppliers).Inc()
		return c.Redirect(suppliersListPath, fiber.StatusFound)
	}
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.SupplierForm  true  "Datos a actualizar"
// @Success      200   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /suppliers/{id}/edit [post]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	if !h.canWrite(c) {
		metrics.PermissionDenied.WithLabelValues(entity.ModuleSuppliers).Inc()
		return c.Redirect(suppliersListPath, fiber.StatusFound)
	}
	var in dto.SupplierForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, fieldErrs, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un proveedor con este identificador"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Errors: fieldErrs})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	metrics.RecordOperation("supplier", "update")
	return c.JSON(out)
}

// ConfirmDelete responde al GET de la ruta de borrado: redirige al listado
// sin tocar nada (el borrado solo ocurre por POST).
func (h *SupplierHandler) ConfirmDelete(c *fiber.Ctx) error {
	return c.Redirect(suppliersListPath, fiber.StatusFound)
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         suppliers
// @Security     Bearer
// @Param        id   path  string  true  "ID del proveedor"
// @Success      302  "Redirige al listado"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /suppliers/{id}/delete [post]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	// Borrar exige exactamente nivel 2: el nivel 3 también queda fuera.
	if h.level(c) != entity.LevelReadWrite {
		metrics.PermissionDenied.WithLabelValues(entity.ModuleSuppliers).Inc()
		return c.Redirect(suppliersListPath, fiber.StatusFound)
	}
	ok, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	metrics.RecordOperation("supplier", "delete")
	return c.Redirect(suppliersListPath, fiber.StatusFound)
}

// BulkCreate godoc
// @Summary      Carga masiva de proveedores por CSV
// @Tags         suppliers
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        csv_file  formData  file  true  "Archivo CSV (UTF-8 o ISO-8859-1)"
// @Success      200  {object}  dto.BulkImportResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /suppliers/bulk_create [post]
func (h *SupplierHandler) BulkCreate(c *fiber.Ctx) error {
	if !h.canWrite(c) {
		metrics.PermissionDenied.WithLabelValues(entity.ModuleSuppliers).Inc()
		return c.Redirect(suppliersListPath, fiber.StatusFound)
	}
	fileHeader, err := c.FormFile("csv_file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el archivo csv_file"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer file.Close()
	raw, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}

	result, err := h.importUC.Import(c.Context(), raw, GetUserID(c), GetUsername(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnreadableEncoding):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNREADABLE_ENCODING", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CSV", Message: err.Error()})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el lote contiene un id_supplier ya existente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.RecordOperation("supplier", "bulk_create")
	metrics.BulkRowsAccepted.Add(float64(result.Accepted))
	metrics.BulkRowsRejected.Add(float64(result.Rejected))
	return c.JSON(result)
}

// BulkTemplate godoc
// @Summary      Plantilla CSV de carga masiva
// @Tags         suppliers
// @Security     Bearer
// @Produce      text/csv
// @Success      200  "Encabezado canónico, sin filas"
// @Router       /suppliers/bulk/template [get]
func (h *SupplierHandler) BulkTemplate(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="supplier_template.csv"`)
	return c.Send(bulk.TemplateCSV())
}
