package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL (usable con pool o tx).
// Los lotes son inmutables: solo inserción y lectura.
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de persistencia para lotes.
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un nuevo lote y asigna el ID generado.
func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO lote (id_producto, fecha_elaboracion, fecha_vencimiento)
		VALUES ($1, $2, $3)
		RETURNING id_lote`
	err := r.q.QueryRow(context.Background(), query,
		batch.ProductID, batch.ElaboratedAt, batch.ExpiresAt,
	).Scan(&batch.ID)
	if err != nil {
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// ListByProduct lista los lotes de un producto (normalmente uno).
func (r *BatchRepo) ListByProduct(productID int64) ([]*entity.Batch, error) {
	query := `
		SELECT id_lote, id_producto, fecha_elaboracion, fecha_vencimiento
		FROM lote WHERE id_producto = $1 ORDER BY id_lote`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(&b.ID, &b.ProductID, &b.ElaboratedAt, &b.ExpiresAt); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
