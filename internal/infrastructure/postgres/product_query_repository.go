package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ProductQueryRepository = (*ProductQueryRepo)(nil)

// ProductQueryRepo consultas de solo lectura que reagrupan
// producto × lote × lote_x_deposito × deposito para presentación.
// Corren fuera de la transacción de escritura (consistencia eventual aceptada).
type ProductQueryRepo struct {
	pool *pgxpool.Pool
}

// NewProductQueryRepository construye el adaptador de consultas.
func NewProductQueryRepository(pool *pgxpool.Pool) *ProductQueryRepo {
	return &ProductQueryRepo{pool: pool}
}

// FindAllByDepot devuelve el stock activo agrupado por depósito.
// Solo participan pares lote × depósito con activo = true; la categoría
// ausente se presenta como "—".
func (r *ProductQueryRepo) FindAllByDepot(ctx context.Context) ([]repository.DepotStockView, error) {
	const query = `
	SELECT
	    d.id_deposito,
	    d.nombre                  AS nombre_deposito,
	    p.id,
	    p.nombre                  AS nombre_producto,
	    p.descripcion,
	    p.precio,
	    p.activo,
	    p.imagen_url,
	    COALESCE(c.nombre, '—')   AS nombre_categoria,
	    ld.stock
	FROM producto p
	JOIN lote l             ON l.id_producto = p.id
	JOIN lote_x_deposito ld ON ld.id_lote = l.id_lote AND ld.activo = true
	JOIN deposito d         ON d.id_deposito = ld.id_deposito
	LEFT JOIN categoria c   ON c.id = p.categoria_id
	ORDER BY d.id_deposito, p.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find all por deposito: %w", err)
	}
	defer rows.Close()

	var result []repository.DepotStockView
	byDepot := map[int64]int{}
	for rows.Next() {
		var (
			depotID   int64
			depotName string
			p         repository.DepotProductView
		)
		if err := rows.Scan(&depotID, &depotName, &p.ID, &p.Name, &p.Description,
			&p.Price, &p.Active, &p.ImageURL, &p.CategoryName, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan fila deposito: %w", err)
		}
		idx, ok := byDepot[depotID]
		if !ok {
			idx = len(result)
			byDepot[depotID] = idx
			result = append(result, repository.DepotStockView{
				DepotID:   depotID,
				DepotName: depotName,
			})
		}
		result[idx].Products = append(result[idx].Products, p)
	}
	return result, rows.Err()
}

// FindOne devuelve el detalle de un producto con su stock por depósito.
// Devuelve nil si el producto no tiene ningún par lote × depósito activo.
func (r *ProductQueryRepo) FindOne(ctx context.Context, id int64) (*repository.ProductDetailView, error) {
	const query = `
	SELECT
	    p.id,
	    p.nombre                  AS nombre_producto,
	    p.descripcion,
	    p.precio,
	    p.activo,
	    p.imagen_url,
	    COALESCE(c.nombre, '—')   AS nombre_categoria,
	    d.id_deposito,
	    d.nombre                  AS nombre_deposito,
	    ld.stock
	FROM producto p
	JOIN lote l             ON l.id_producto = p.id
	JOIN lote_x_deposito ld ON ld.id_lote = l.id_lote AND ld.activo = true
	JOIN deposito d         ON d.id_deposito = ld.id_deposito
	LEFT JOIN categoria c   ON c.id = p.categoria_id
	WHERE p.id = $1
	ORDER BY d.id_deposito`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("find one producto: %w", err)
	}
	defer rows.Close()

	var detail *repository.ProductDetailView
	for rows.Next() {
		var (
			p  repository.ProductDetailView
			ds repository.ProductDepotStock
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Active,
			&p.ImageURL, &p.CategoryName, &ds.DepotID, &ds.DepotName, &ds.Stock); err != nil {
			return nil, fmt.Errorf("scan detalle producto: %w", err)
		}
		if detail == nil {
			detail = &p
		}
		detail.Depots = append(detail.Depots, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return detail, nil
}
