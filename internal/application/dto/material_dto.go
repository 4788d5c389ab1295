package dto

import "time"

// MaterialForm datos del formulario de creación/edición de materiales.
// Las mismas reglas valen para el alta individual (no hay carga masiva de
// materiales).
type MaterialForm struct {
	IDMaterial   string `json:"id_material" form:"id_material" validate:"required,max=50"`
	Name         string `json:"name" form:"name" validate:"required,max=100"`
	Description  string `json:"description" form:"description" validate:"max=250"`
	Unit         string `json:"unit" form:"unit" validate:"required,max=20"`
	MaterialType string `json:"material_type" form:"material_type" validate:"required,max=50"`
	Status       string `json:"status" form:"status" validate:"required,max=50"`
}

// MaterialResponse material con campos de auditoría resueltos.
type MaterialResponse struct {
	ID           string    `json:"id"`
	IDMaterial   string    `json:"id_material"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Unit         string    `json:"unit"`
	MaterialType string    `json:"material_type"`
	Status       string    `json:"status"`
	CreatedBy    string    `json:"created_by"` // username o "N/A"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MaterialListResponse página de materiales.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageMeta           `json:"page"`
}
