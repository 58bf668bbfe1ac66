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

// UpdateProductInput entrada para la actualización transaccional. Solo los
// campos no nil sobreescriben los existentes. Adjustments son deltas con
// signo que se asientan como movimientos UPD; RemoveDepotIDs desactiva pares
// lote × depósito sin tocar el libro.
type UpdateProductInput struct {
	Name           *string
	Description    *string
	Price          *decimal.Decimal
	CategoryID     *int64
	ImageURL       *string
	Adjustments    []DepotQuantity
	RemoveDepotIDs []int64
}

// UpdateProduct ejecuta la actualización como una unidad de trabajo: parche
// de campos, un movimiento UPD por (ajuste × lote) con el stock recalculado
// sobre TODOS los tipos de movimiento del par (producto, depósito), y la
// desactivación de los depósitos pedidos. Cualquier falla revierte todo,
// incluido el parche de campos.
//
// El ajuste se aplica a cada lote del producto; mientras el catálogo maneje
// un lote por producto el efecto es el esperado.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*entity.Product, error) {
	now := time.Now()
	txID := uuid.New().String()

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		product, err := r.Products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			if input.Price.IsNegative() {
				return domain.ErrInvalidInput
			}
			product.Price = *input.Price
		}
		if input.CategoryID != nil {
			category, err := r.Categories.GetByID(*input.CategoryID)
			if err != nil {
				return err
			}
			// Categoría inexistente => se conserva la actual.
			if category != nil {
				product.CategoryID = &category.ID
			}
		}
		if input.ImageURL != nil {
			product.ImageURL = input.ImageURL
		}
		product.UpdatedAt = now
		if err := r.Products.Update(product); err != nil {
			return err
		}

		batches, err := r.Batches.ListByProduct(id)
		if err != nil {
			return err
		}

		for _, adj := range input.Adjustments {
			depot, err := r.Depots.GetByID(adj.DepotID)
			if err != nil {
				return err
			}
			if depot == nil {
				return fmt.Errorf("%w: deposito %d", domain.ErrDepotNotFound, adj.DepotID)
			}

			for _, batch := range batches {
				mov := &entity.Movement{
					TransactionID: txID,
					ProductID:     id,
					BatchID:       batch.ID,
					DepotID:       adj.DepotID,
					Type:          entity.MovementTypeUPD,
					Quantity:      adj.Quantity,
					CreatedAt:     now,
				}
				if err := r.Movements.Create(mov); err != nil {
					return err
				}

				// En la actualización el agregado cubre todos los tipos,
				// no solo INS como en el alta.
				total, err := r.Movements.SumQuantity(id, adj.DepotID)
				if err != nil {
					return err
				}

				assignment, err := r.Assignments.Get(batch.ID, adj.DepotID)
				if err != nil {
					return err
				}
				if assignment == nil {
					assignment = &entity.DepotAssignment{
						BatchID: batch.ID,
						DepotID: adj.DepotID,
					}
				}
				assignment.Stock = total
				// Un ajuste reactiva el par si estaba desactivado.
				assignment.Active = true
				if err := r.Assignments.Upsert(assignment); err != nil {
					return err
				}
			}
		}

		// Desactivación: cambio de visibilidad, no de stock. No se asienta
		// ningún movimiento y el stock materializado queda como historia.
		for _, depotID := range input.RemoveDepotIDs {
			for _, batch := range batches {
				if err := r.Assignments.SetActive(batch.ID, depotID, false); err != nil {
					return err
				}
			}
		}

		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx)
	return updated, nil
}
