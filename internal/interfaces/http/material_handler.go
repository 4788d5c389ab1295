package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/masterdata-pro/internal/application/dto"
	"github.com/tu-usuario/masterdata-pro/internal/application/usecase"
	"github.com/tu-usuario/masterdata-pro/internal/domain/entity"
	"github.com/tu-usuario/masterdata-pro/internal/domain/repository"
	"github.com/tu-usuario/masterdata-pro/pkg/metrics"
)

const materialsListPath = "/materials/"

// MaterialHandler maneja las peticiones HTTP del módulo de materiales
// (protegido; el guard de nivel 0 vive en el router).
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

func (h *MaterialHandler) level(c *fiber.Ctx) int {
	return GetPermissions(c).Level(entity.ModuleMaterials)
}

// canWrite exige nivel 2 o superior. Nivel 1 (solo lectura) se redirige al
// listado en silencio, sin cuerpo de error.
func (h *MaterialHandler) canWrite(c *fiber.Ctx) bool {
	return h.level(c) >= entity.LevelReadWrite
}

func materialFilterFromQuery(c *fiber.Ctx) repository.MaterialFilter {
	return repository.MaterialFilter{
		IDMaterial:   c.Query("id_material"),
		Name:         c.Query("name"),
		MaterialType: c.Query("material_type"),
		Status:       c.Query("status"),
	}
}

// List godoc
// @Summary      Listar materiales
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id_material    query  string  false  "Filtro parcial por código"
// @Param        name           query  string  false  "Filtro parcial por nombre"
// @Param        material_type  query  string  false  "Filtro parcial por tipo"
// @Param        status         query  string  false  "Filtro exacto por estado"
// @Param        page           query  int     false  "Página (tamaño fijo 10)"  default(1)
// @Param        export         query  string  false  "export=csv descarga el set filtrado completo"
// @Success      200  {object}  dto.MaterialListResponse
// @Router       /materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	f := materialFilterFromQuery(c)
	if c.Query("export") == "csv" {
		return h.exportCSV(c, f)
	}
	page := c.QueryInt("page", 1)
	out, err := h.uc.List(c.Context(), f, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.RecordOperation("material", "list")
	return c.JSON(out)
}

// exportCSV descarga el set filtrado completo, ignorando la paginación.
func (h *MaterialHandler) exportCSV(c *fiber.Ctx, f repository.MaterialFilter) error {
	var buf bytes.Buffer
	if err := h.uc.ExportCSV(c.Context(), f, &buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.RecordOperation("material", "export")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="Materials.csv"`)
	return c.Send(buf.Bytes())
}

// CreateForm godoc
// @Summary      Formulario de alta de material
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MaterialForm
// @Router       /materials/create [get]
func (h *MaterialHandler) CreateForm(c *fiber.Ctx) error {
	if !h.canWrite(c) {
		metrics.PermissionDenied.WithLabelValues(entity.ModuleMaterials).Inc()
		return c.Redirect(materialsListPath, fiber.StatusFound)
	}
	return c.JSON(dto.MaterialForm{})
}

// Create godoc
// @Summary      Crear material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MaterialForm  true  "Datos del material"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /materials/create [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	if !h.canWrite(c) {
		metrics.PermissionDenied.WithLabelValues(entity.ModuleMaterials).Inc()
		return c.Redirect(materialsListPath, fiber.StatusFound)
	}
	var in dto.MaterialForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, fieldErrs, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Errors: fieldErrs})
	}
	metrics.RecordOperation("material", "create")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// EditForm godoc
// @Summary      Formulario de edición con los datos actuales
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del material"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /materials/{id}/edit [get]
func (h *MaterialHandler) EditForm(c *fiber.Ctx) error {
	if !h.canWrite(c) {
		metrics.PermissionDenied.WithLabelValues(entity.ModuleMaterials).Inc()
		return c.Redirect(materialsListPath, fiber.StatusFound)
	}
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del material"
// @Param        body  body  dto.MaterialForm  true  "Datos a actualizar"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /materials/{id}/edit [post]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	if !h.canWrite(c) {
		metrics.PermissionDenied.WithLabelValues(entity.ModuleMaterials).Inc()
		return c.Redirect(materialsListPath, fiber.StatusFound)
	}
	var in dto.MaterialForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, fieldErrs, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if fieldErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Errors: fieldErrs})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
	}
	metrics.RecordOperation("material", "update")
	return c.JSON(out)
}

// ConfirmDelete responde al GET de la ruta de borrado: redirige al listado
// sin tocar nada (el borrado solo ocurre por POST).
func (h *MaterialHandler) ConfirmDelete(c *fiber.Ctx) error {
	return c.Redirect(materialsListPath, fiber.StatusFound)
}

// Delete godoc
// @Summary      Eliminar material
// @Tags         materials
// @Security     Bearer
// @Param        id   path  string  true  "ID del material"
// @Success      302  "Redirige al listado"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /materials/{id}/delete [post]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	// Borrar exige exactamente nivel 2: el nivel 3 también queda fuera.
	if h.level(c) != entity.LevelReadWrite {
		metrics.PermissionDenied.WithLabelValues(entity.ModuleMaterials).Inc()
		return c.Redirect(materialsListPath, fiber.StatusFound)
	}
	ok, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
	}
	metrics.RecordOperation("material", "delete")
	return c.Redirect(materialsListPath, fiber.StatusFound)
}
