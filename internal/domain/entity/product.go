package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo multi-depósito.
// El stock NO vive aquí: se deriva del libro de movimientos y se materializa
// por (lote, depósito) en DepotAssignment.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, NUMERIC en BD
	Active      bool            // soft delete: false = archivado, la fila nunca se borra
	ImageURL    *string         // URL pública de la imagen, nil si no tiene
	CategoryID  *int64          // nil = sin categoría (no es error)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
