package bulk

import (
	"bytes"
	"encoding/csv"
)

// TemplateCSV genera la plantilla de carga: solo el encabezado canónico, sin
// filas de datos y sin BOM (a diferencia del export).
func TemplateCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(ImportHeaders)
	w.Flush()
	return buf.Bytes()
}
