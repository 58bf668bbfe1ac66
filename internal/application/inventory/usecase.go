package inventory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// Clave de caché de la vista agrupada por depósito.
const cacheKeyFindAll = "productos:por-deposito"

// ProductUseCase orquesta el camino de escritura del catálogo: alta de
// producto con lote y stock inicial, actualización con ajustes de stock y
// desactivación de depósitos, archivado y restauración. Cada escritura es
// una unidad de trabajo atómica sobre el libro de movimientos (TxRunner).
type ProductUseCase struct {
	txRunner  TxRunner
	products  repository.ProductRepository
	movements repository.MovementRepository
	queries   repository.ProductQueryRepository
	cache     Cache // nil = sin caché
}

// NewProductUseCase construye el caso de uso. cache puede ser nil.
func NewProductUseCase(
	txRunner TxRunner,
	products repository.ProductRepository,
	movements repository.MovementRepository,
	queries repository.ProductQueryRepository,
	cache Cache,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:  txRunner,
		products:  products,
		movements: movements,
		queries:   queries,
		cache:     cache,
	}
}

// Remove archiva un producto (soft delete). No toca lotes, asignaciones ni
// el libro: el stock queda consultable para auditoría. Solo un id
// genuinamente inexistente falla; re-archivar es válido.
func (uc *ProductUseCase) Remove(ctx context.Context, id int64) error {
	affected, err := uc.products.SetActive(id, false)
	if err != nil {
		return err
	}
	if !affected {
		return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	uc.invalidateCache(ctx)
	return nil
}

// Restore restaura un producto archivado. Simétrico a Remove.
func (uc *ProductUseCase) Restore(ctx context.Context, id int64) error {
	affected, err := uc.products.SetActive(id, true)
	if err != nil {
		return err
	}
	if !affected {
		return fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	uc.invalidateCache(ctx)
	return nil
}

// FindAll devuelve el stock activo agrupado por depósito, con lectura a
// través de caché cuando está disponible.
func (uc *ProductUseCase) FindAll(ctx context.Context) ([]repository.DepotStockView, error) {
	if uc.cache != nil {
		var cached []repository.DepotStockView
		if err := uc.cache.Get(ctx, cacheKeyFindAll, &cached); err == nil {
			return cached, nil
		}
	}
	views, err := uc.queries.FindAllByDepot(ctx)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, cacheKeyFindAll, views); err != nil {
			log.Warn().Err(err).Msg("no se pudo guardar la vista en caché")
		}
	}
	return views, nil
}

// FindOne devuelve el detalle de un producto con su stock por depósito.
func (uc *ProductUseCase) FindOne(ctx context.Context, id int64) (*repository.ProductDetailView, error) {
	detail, err := uc.queries.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	return detail, nil
}

// ListMovements lista las entradas del libro de un producto para auditoría.
func (uc *ProductUseCase) ListMovements(id int64, limit, offset int) ([]*entity.Movement, error) {
	return uc.movements.ListByProduct(id, limit, offset)
}

// invalidateCache borra la vista agrupada tras cualquier escritura confirmada.
func (uc *ProductUseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, cacheKeyFindAll); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar la caché de productos")
	}
}
