package entity

import "time"

// Tipos de movimiento del libro de stock.
const (
	MovementTypeINS = "INS" // inserción inicial al crear el producto
	MovementTypeUPD = "UPD" // ajuste posterior (delta con signo)
)

// Movement es una entrada del libro de movimientos: append-only, nunca se
// actualiza ni se borra. Es la única fuente de verdad del stock.
// Quantity es un delta con signo; en INS siempre es positivo.
type Movement struct {
	ID            int64
	TransactionID string // uuid que agrupa los movimientos de una misma unidad de trabajo
	ProductID     int64
	BatchID       int64
	DepotID       int64
	Type          string
	Quantity      int64
	CreatedAt     time.Time
}
