package inventory

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// Scope limita qué movimientos cuentan para el agregado de stock.
// BatchID = 0 acepta cualquier lote; Types vacío acepta todos los tipos.
type Scope struct {
	ProductID int64
	DepotID   int64
	BatchID   int64
	Types     []string
}

// Matches indica si un movimiento cae dentro del alcance.
func (s Scope) Matches(m *entity.Movement) bool {
	if m.ProductID != s.ProductID || m.DepotID != s.DepotID {
		return false
	}
	if s.BatchID != 0 && m.BatchID != s.BatchID {
		return false
	}
	if len(s.Types) == 0 {
		return true
	}
	for _, t := range s.Types {
		if m.Type == t {
			return true
		}
	}
	return false
}

// CurrentStock implementa el agregador de stock (servicio de dominio):
// suma las cantidades de los movimientos dentro del alcance. Sin movimientos
// que coincidan devuelve 0, nunca error. Es el cálculo de referencia; el
// adaptador de PostgreSQL ejecuta la misma suma con SUM(cantidad) dentro de
// la transacción de escritura.
func CurrentStock(movs []*entity.Movement, s Scope) int64 {
	var total int64
	for _, m := range movs {
		if s.Matches(m) {
			total += m.Quantity
		}
	}
	return total
}
