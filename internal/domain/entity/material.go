package entity

import "time"

// Material entidad maestra de materiales. id_material es el identificador
// externo de negocio (el esquema actual no lo declara único).
type Material struct {
	ID           string
	IDMaterial   string
	Name         string
	Description  string
	Unit         string
	MaterialType string
	Status       string

	CreatedBy     *string // id de usuario, nulo si el autor fue eliminado
	CreatedByName string   // username del autor para listados y export (no persistido)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
