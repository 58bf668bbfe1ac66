package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// DepotAssignmentRepository define el puerto para la relación lote × depósito.
// Usado dentro de transacciones: el stock materializado solo se escribe con
// el valor recalculado del libro de movimientos.
type DepotAssignmentRepository interface {
	// Get devuelve nil (sin error) si el par (lote, depósito) no existe.
	Get(batchID, depotID int64) (*entity.DepotAssignment, error)
	// Upsert inserta o sobreescribe stock y activo para el par.
	Upsert(assignment *entity.DepotAssignment) error
	// SetActive cambia solo el flag activo; el stock y la historia quedan intactos.
	SetActive(batchID, depotID int64, active bool) error
}
