package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// DepotQuantity es un par (depósito, cantidad) de la distribución de stock.
type DepotQuantity struct {
	DepotID  int64
	Quantity int64
}

// CreateProductInput entrada para el alta transaccional de un producto.
// CategoryID = 0 significa sin categoría. ImageURL es la ruta pública que el
// colaborador de subida de archivos ya resolvió (nil si no hay imagen).
type CreateProductInput struct {
	Name         string
	Description  string
	Price        decimal.Decimal
	CategoryID   int64
	ImageURL     *string
	ElaboratedAt time.Time
	ExpiresAt    time.Time
	Depots       []DepotQuantity
}

// CreateProduct ejecuta el alta como una unidad de trabajo: producto, un
// lote, un movimiento INS por depósito, y la asignación lote × depósito con
// el stock recalculado del libro. Cualquier falla revierte todo.
//
// La categoría ausente no es error (producto sin categoría); el depósito
// ausente aborta la transacción completa. En el alta el agregado se
// restringe a movimientos INS.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if input.Name == "" || len(input.Depots) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	for _, dep := range input.Depots {
		if dep.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	txID := uuid.New().String()

	var created *entity.Product
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		var categoryID *int64
		if input.CategoryID != 0 {
			category, err := r.Categories.GetByID(input.CategoryID)
			if err != nil {
				return err
			}
			// Categoría inexistente => producto sin categoría, no es error.
			if category != nil {
				categoryID = &category.ID
			}
		}

		product := &entity.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Active:      true,
			ImageURL:    input.ImageURL,
			CategoryID:  categoryID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := r.Products.Create(product); err != nil {
			return err
		}

		batch := &entity.Batch{
			ProductID:    product.ID,
			ElaboratedAt: input.ElaboratedAt,
			ExpiresAt:    input.ExpiresAt,
		}
		if err := r.Batches.Create(batch); err != nil {
			return err
		}

		for _, dep := range input.Depots {
			depot, err := r.Depots.GetByID(dep.DepotID)
			if err != nil {
				return err
			}
			if depot == nil {
				return fmt.Errorf("%w: deposito %d", domain.ErrDepotNotFound, dep.DepotID)
			}

			mov := &entity.Movement{
				TransactionID: txID,
				ProductID:     product.ID,
				BatchID:       batch.ID,
				DepotID:       dep.DepotID,
				Type:          entity.MovementTypeINS,
				Quantity:      dep.Quantity,
				CreatedAt:     now,
			}
			if err := r.Movements.Create(mov); err != nil {
				return err
			}

			// En el alta solo cuentan las inserciones iniciales.
			total, err := r.Movements.SumQuantity(product.ID, dep.DepotID, entity.MovementTypeINS)
			if err != nil {
				return err
			}
			assignment := &entity.DepotAssignment{
				BatchID: batch.ID,
				DepotID: dep.DepotID,
				Stock:   total,
				Active:  true,
			}
			if err := r.Assignments.Upsert(assignment); err != nil {
				return err
			}
		}

		created = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx)
	return created, nil
}
