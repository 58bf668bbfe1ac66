package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// MovementRepository define el puerto del libro de movimientos.
// El libro es append-only: solo Create y lecturas, nunca update ni delete.
type MovementRepository interface {
	// Create persiste un movimiento y asigna su ID generado.
	Create(movement *entity.Movement) error
	// SumQuantity suma las cantidades para (producto, depósito), opcionalmente
	// restringida a ciertos tipos (vacío = todos). Sin filas devuelve 0.
	// Debe ejecutarse dentro de la misma transacción que el movimiento al que
	// reacciona para no leer una escritura parcial.
	SumQuantity(productID, depotID int64, types ...string) (int64, error)
	ListByProduct(productID int64, limit, offset int) ([]*entity.Movement, error)
}
