package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	// GetByID devuelve nil (sin error) si la categoría no existe.
	GetByID(id int64) (*entity.Category, error)
	Update(category *entity.Category) error
	List(limit, offset int) ([]*entity.Category, error)
	Delete(id int64) error
}
