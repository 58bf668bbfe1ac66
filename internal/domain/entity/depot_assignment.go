package entity

import "time"

// DepotAssignment es la relación lote × depósito. Stock es una copia
// materializada del agregado del libro de movimientos: se recalcula y
// persiste en cada transacción de escritura, nunca se incrementa en sitio.
// Active=false saca el par de las vistas de stock sin borrar historia.
type DepotAssignment struct {
	BatchID   int64
	DepotID   int64
	Stock     int64
	Active    bool
	UpdatedAt time.Time
}
