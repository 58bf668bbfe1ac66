package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.DepotAssignmentRepository = (*DepotAssignmentRepo)(nil)

// DepotAssignmentRepo implementación de la relación lote × depósito sobre
// PostgreSQL (usable con pool o tx). El stock materializado solo se escribe
// con el valor recalculado del libro; las filas nunca se borran.
type DepotAssignmentRepo struct {
	q Querier
}

// NewDepotAssignmentRepository construye el adaptador.
func NewDepotAssignmentRepository(q Querier) *DepotAssignmentRepo {
	return &DepotAssignmentRepo{q: q}
}

// Get obtiene el par (lote, depósito). Devuelve nil si no existe.
func (r *DepotAssignmentRepo) Get(batchID, depotID int64) (*entity.DepotAssignment, error) {
	query := `
		SELECT id_lote, id_deposito, stock, activo, updated_at
		FROM lote_x_deposito WHERE id_lote = $1 AND id_deposito = $2`
	var a entity.DepotAssignment
	err := r.q.QueryRow(context.Background(), query, batchID, depotID).Scan(
		&a.BatchID, &a.DepotID, &a.Stock, &a.Active, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote_x_deposito: %w", err)
	}
	return &a, nil
}

// Upsert inserta o sobreescribe stock y activo para el par (lote, depósito).
func (r *DepotAssignmentRepo) Upsert(assignment *entity.DepotAssignment) error {
	query := `
		INSERT INTO lote_x_deposito (id_lote, id_deposito, stock, activo, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id_lote, id_deposito)
		DO UPDATE SET stock = EXCLUDED.stock, activo = EXCLUDED.activo, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		assignment.BatchID, assignment.DepotID, assignment.Stock, assignment.Active,
	)
	if err != nil {
		return fmt.Errorf("upsert lote_x_deposito: %w", err)
	}
	return nil
}

// SetActive cambia solo el flag activo; stock e historia quedan intactos.
func (r *DepotAssignmentRepo) SetActive(batchID, depotID int64, active bool) error {
	query := `
		UPDATE lote_x_deposito SET activo = $3, updated_at = now()
		WHERE id_lote = $1 AND id_deposito = $2`
	_, err := r.q.Exec(context.Background(), query, batchID, depotID, active)
	if err != nil {
		return fmt.Errorf("set activo lote_x_deposito: %w", err)
	}
	return nil
}
