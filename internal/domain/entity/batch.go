package entity

import "time"

// Batch representa un lote: una recepción física de un producto con sus
// fechas de elaboración y vencimiento. Inmutable una vez creado; un producto
// con stock tiene al menos un lote.
type Batch struct {
	ID           int64
	ProductID    int64
	ElaboratedAt time.Time // fecha de elaboración
	ExpiresAt    time.Time // fecha de vencimiento
}
