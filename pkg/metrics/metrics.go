// Package metrics expone contadores Prometheus del servicio de datos
// maestros. Se registran vía promauto en el registry por defecto y se sirven
// en /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EntityOperations operaciones CRUD/list/export por entidad.
	EntityOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "masterdata_operations_total",
			Help: "Total de operaciones sobre datos maestros",
		},
		[]string{"entity", "operation"},
	)

	// BulkRowsAccepted filas aceptadas y persistidas por la carga masiva.
	BulkRowsAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "masterdata_bulk_rows_accepted_total",
			Help: "Filas de carga masiva aceptadas y persistidas",
		},
	)

	// BulkRowsRejected filas rechazadas por validación en la carga masiva.
	BulkRowsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "masterdata_bulk_rows_rejected_total",
			Help: "Filas de carga masiva rechazadas por validación",
		},
	)

	// PermissionDenied accesos rechazados por nivel de permiso insuficiente.
	PermissionDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "masterdata_permission_denied_total",
			Help: "Accesos denegados por permisos, por módulo",
		},
		[]string{"module"},
	)
)

// RecordOperation incrementa el contador de operaciones de una entidad.
func RecordOperation(entity, operation string) {
	EntityOperations.WithLabelValues(entity, operation).Inc()
}
