package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado por la BD.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO producto (nombre, descripcion, precio, activo, imagen_url, categoria_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Price, product.Active,
		product.ImageURL, product.CategoryID, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, nombre, descripcion, precio, activo, imagen_url, categoria_id, created_at, updated_at
		FROM producto WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Active,
		&p.ImageURL, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update actualiza los campos de catálogo de un producto existente.
// El stock nunca se toca aquí: se deriva del libro de movimientos.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE producto SET nombre = $2, descripcion = $3, precio = $4, imagen_url = $5, categoria_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.ImageURL, product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// SetActive cambia el flag de soft delete. Devuelve false si el id no existe.
// Reaplicar sobre un producto ya archivado sigue afectando la fila, por lo
// que solo un id genuinamente inexistente devuelve false.
func (r *ProductRepo) SetActive(id int64, active bool) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE producto SET activo = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return false, fmt.Errorf("set activo producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
