package dto

// PageMeta metadatos de paginación por número de página (tamaño fijo 10).
type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error de validación con detalle campo → mensaje.
type ValidationErrorResponse struct {
	Code   string            `json:"code"`
	Errors map[string]string `json:"errors"`
}
