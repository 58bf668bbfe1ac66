package inventory

import (
	"context"
	"errors"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción.
type TxRepos struct {
	Products    repository.ProductRepository
	Batches     repository.BatchRepository
	Movements   repository.MovementRepository
	Assignments repository.DepotAssignmentRepository
	Depots      repository.DepotRepository
	Categories  repository.CategoryRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Si fn devuelve error, ninguna escritura
// persiste. Garantiza la atomicidad del camino de escritura.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// ErrCacheMiss indica que la clave no está en caché; no es una falla.
var ErrCacheMiss = errors.New("cache miss")

// Cache puerto de caché para la vista agrupada por depósito. Una falla de
// caché degrada a lectura de BD, nunca a error de la petición.
type Cache interface {
	// Get deserializa el valor en dest; devuelve ErrCacheMiss si no existe.
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}
