package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// DepotRepository define el puerto de persistencia para Depot (DIP).
type DepotRepository interface {
	Create(depot *entity.Depot) error
	// GetByID devuelve nil (sin error) si el depósito no existe.
	GetByID(id int64) (*entity.Depot, error)
	Update(depot *entity.Depot) error
	List(limit, offset int) ([]*entity.Depot, error)
	// SetActive cambia el flag activo. Devuelve false si ninguna fila fue afectada.
	SetActive(id int64, active bool) (bool, error)
}
