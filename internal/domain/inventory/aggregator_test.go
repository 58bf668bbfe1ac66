package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/inventory"
)

func mov(productID, batchID, depotID int64, typ string, qty int64) *entity.Movement {
	return &entity.Movement{
		ProductID: productID,
		BatchID:   batchID,
		DepotID:   depotID,
		Type:      typ,
		Quantity:  qty,
	}
}

// Sin movimientos que coincidan el agregado es 0, nunca error.
func TestCurrentStock_SinMovimientos(t *testing.T) {
	total := inventory.CurrentStock(nil, inventory.Scope{ProductID: 1, DepotID: 1})
	assert.Equal(t, int64(0), total)
}

// Solo cuentan los movimientos del par (producto, depósito) pedido.
func TestCurrentStock_FiltraPorProductoYDeposito(t *testing.T) {
	movs := []*entity.Movement{
		mov(1, 10, 1, entity.MovementTypeINS, 25),
		mov(1, 10, 2, entity.MovementTypeINS, 40), // otro depósito
		mov(2, 11, 1, entity.MovementTypeINS, 7),  // otro producto
	}
	total := inventory.CurrentStock(movs, inventory.Scope{ProductID: 1, DepotID: 1})
	assert.Equal(t, int64(25), total)
}

// El filtro por tipo reproduce la asimetría alta/actualización: el alta
// agrega solo INS; la actualización agrega todos los tipos.
func TestCurrentStock_FiltroPorTipo(t *testing.T) {
	movs := []*entity.Movement{
		mov(1, 10, 1, entity.MovementTypeINS, 25),
		mov(1, 10, 1, entity.MovementTypeUPD, 5),
		mov(1, 10, 1, entity.MovementTypeUPD, -3),
	}

	soloINS := inventory.CurrentStock(movs, inventory.Scope{ProductID: 1, DepotID: 1, Types: []string{entity.MovementTypeINS}})
	assert.Equal(t, int64(25), soloINS)

	todos := inventory.CurrentStock(movs, inventory.Scope{ProductID: 1, DepotID: 1})
	assert.Equal(t, int64(27), todos)
}

// Deltas negativos restan; el agregado puede quedar negativo y el agregador
// no lo recorta (la política vive en quien escribe la asignación).
func TestCurrentStock_DeltasNegativos(t *testing.T) {
	movs := []*entity.Movement{
		mov(1, 10, 1, entity.MovementTypeINS, 10),
		mov(1, 10, 1, entity.MovementTypeUPD, -15),
	}
	total := inventory.CurrentStock(movs, inventory.Scope{ProductID: 1, DepotID: 1})
	assert.Equal(t, int64(-5), total)
}

// BatchID = 0 acepta cualquier lote; con lote concreto solo ese lote suma.
func TestCurrentStock_AlcancePorLote(t *testing.T) {
	movs := []*entity.Movement{
		mov(1, 10, 1, entity.MovementTypeINS, 8),
		mov(1, 11, 1, entity.MovementTypeINS, 4),
	}

	todosLotes := inventory.CurrentStock(movs, inventory.Scope{ProductID: 1, DepotID: 1})
	assert.Equal(t, int64(12), todosLotes)

	soloLote11 := inventory.CurrentStock(movs, inventory.Scope{ProductID: 1, DepotID: 1, BatchID: 11})
	assert.Equal(t, int64(4), soloLote11)
}

func TestScope_Matches(t *testing.T) {
	s := inventory.Scope{ProductID: 1, DepotID: 2, Types: []string{entity.MovementTypeUPD}}

	assert.True(t, s.Matches(mov(1, 10, 2, entity.MovementTypeUPD, 1)))
	assert.False(t, s.Matches(mov(1, 10, 2, entity.MovementTypeINS, 1)), "tipo fuera del alcance")
	assert.False(t, s.Matches(mov(1, 10, 3, entity.MovementTypeUPD, 1)), "depósito fuera del alcance")
}
