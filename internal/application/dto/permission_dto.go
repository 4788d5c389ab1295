package dto

// PermissionsResponse mapa módulo → nivel (0-3) y roles del usuario.
type PermissionsResponse struct {
	Permissions map[string]int `json:"permissions"`
	Roles       []string       `json:"roles"`
}
