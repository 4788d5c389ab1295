package dto

// RejectedRow fila rechazada por la carga masiva: número de fila de negocio
// (encabezado = fila 1, primera fila de datos = fila 2), los datos crudos ya
// recortados y el detalle campo → mensaje.
type RejectedRow struct {
	Row    int               `json:"row"`
	Data   map[string]string `json:"data"`
	Errors map[string]string `json:"errors"`
}

// BulkImportResult reporte completo de una carga masiva de proveedores.
// Accepted + Rejected == Total siempre.
type BulkImportResult struct {
	Message  string             `json:"message"`
	Accepted int                `json:"accepted"`
	Rejected int                `json:"rejected"`
	Total    int                `json:"total"`
	Created  []SupplierResponse `json:"created"`
	Errors   []RejectedRow      `json:"errors"`
}
