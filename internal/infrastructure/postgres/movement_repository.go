package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Append-only: no existe update ni delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del libro de movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento y asigna el ID generado.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movimiento (transaction_id, id_producto, id_lote, id_deposito, tipo, cantidad, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.TransactionID, movement.ProductID, movement.BatchID,
		movement.DepotID, movement.Type, movement.Quantity, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// SumQuantity suma las cantidades del libro para (producto, depósito),
// restringida a los tipos dados (vacío = todos). Misma suma que el agregador
// de dominio, ejecutada en SQL dentro de la transacción en curso.
func (r *MovementRepo) SumQuantity(productID, depotID int64, types ...string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(cantidad), 0)
		FROM movimiento WHERE id_producto = $1 AND id_deposito = $2`
	args := []any{productID, depotID}
	if len(types) > 0 {
		query += ` AND tipo = ANY($3)`
		args = append(args, types)
	}
	var total int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum movimientos: %w", err)
	}
	return total, nil
}

// ListByProduct lista los movimientos de un producto en orden de inserción.
func (r *MovementRepo) ListByProduct(productID int64, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, transaction_id, id_producto, id_lote, id_deposito, tipo, cantidad, created_at
		FROM movimiento WHERE id_producto = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.ProductID, &m.BatchID,
			&m.DepotID, &m.Type, &m.Quantity, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
