package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y asigna su ID generado.
	Create(product *entity.Product) error
	// GetByID devuelve nil (sin error) si el producto no existe.
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	// SetActive cambia el flag de soft delete. Devuelve false si ninguna
	// fila fue afectada (id inexistente).
	SetActive(id int64, active bool) (bool, error)
}
