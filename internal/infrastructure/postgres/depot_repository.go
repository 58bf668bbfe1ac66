package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.DepotRepository = (*DepotRepo)(nil)

// DepotRepo implementación del puerto DepotRepository sobre PostgreSQL (usable con pool o tx).
type DepotRepo struct {
	q Querier
}

// NewDepotRepository construye el adaptador de persistencia para depósitos.
func NewDepotRepository(q Querier) *DepotRepo {
	return &DepotRepo{q: q}
}

// Create persiste un nuevo depósito y asigna el ID generado.
func (r *DepotRepo) Create(depot *entity.Depot) error {
	query := `
		INSERT INTO deposito (nombre, direccion, activo)
		VALUES ($1, $2, $3)
		RETURNING id_deposito`
	err := r.q.QueryRow(context.Background(), query,
		depot.Name, depot.Address, depot.Active,
	).Scan(&depot.ID)
	if err != nil {
		return fmt.Errorf("insert deposito: %w", err)
	}
	return nil
}

// GetByID obtiene un depósito por ID. Devuelve nil si no existe.
func (r *DepotRepo) GetByID(id int64) (*entity.Depot, error) {
	query := `
		SELECT id_deposito, nombre, direccion, activo
		FROM deposito WHERE id_deposito = $1`
	var d entity.Depot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Name, &d.Address, &d.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deposito: %w", err)
	}
	return &d, nil
}

// Update actualiza un depósito existente.
func (r *DepotRepo) Update(depot *entity.Depot) error {
	query := `
		UPDATE deposito SET nombre = $2, direccion = $3
		WHERE id_deposito = $1`
	_, err := r.q.Exec(context.Background(), query, depot.ID, depot.Name, depot.Address)
	if err != nil {
		return fmt.Errorf("update deposito: %w", err)
	}
	return nil
}

// List lista depósitos con paginación.
func (r *DepotRepo) List(limit, offset int) ([]*entity.Depot, error) {
	query := `
		SELECT id_deposito, nombre, direccion, activo
		FROM deposito ORDER BY id_deposito LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list depositos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Depot
	for rows.Next() {
		var d entity.Depot
		if err := rows.Scan(&d.ID, &d.Name, &d.Address, &d.Active); err != nil {
			return nil, fmt.Errorf("scan deposito: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// SetActive cambia el flag activo del depósito. Devuelve false si el id no existe.
func (r *DepotRepo) SetActive(id int64, active bool) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE deposito SET activo = $2 WHERE id_deposito = $1`,
		id, active,
	)
	if err != nil {
		return false, fmt.Errorf("set activo deposito: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
