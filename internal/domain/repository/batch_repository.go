package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// BatchRepository define el puerto de persistencia para los lotes.
// Los lotes son inmutables: no hay Update ni Delete.
type BatchRepository interface {
	// Create persiste el lote y asigna su ID generado.
	Create(batch *entity.Batch) error
	ListByProduct(productID int64) ([]*entity.Batch, error)
}
