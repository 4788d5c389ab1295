package entity

import "time"

// User representa un usuario del sistema. Los permisos por módulo no viven
// aquí: se derivan de los roles asignados (ver Role y UserRole).
type User struct {
	ID           string
	Username     string // único, usado en auditoría (created_by)
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
