// Package pdf genera el reporte imprimible de stock por depósito.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Reporte de stock por depósito + fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DEPÓSITO 1: nombre                                         │
//	│  TABLA: ID | Producto | Categoría | Precio | Stock          │
//	│  DEPÓSITO 2: ...                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoStockReportGenerator genera el PDF del reporte de stock usando Maroto v2.
type MarotoStockReportGenerator struct{}

// NewMarotoStockReportGenerator construye el generador.
func NewMarotoStockReportGenerator() *MarotoStockReportGenerator {
	return &MarotoStockReportGenerator{}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReportGenerator) GenerateStockReport(views []repository.DepotStockView) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock por depósito", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, depot := range views {
		m.AddRows(depotHeaderRow(depot))
		m.AddRows(tableHeaderRow())
		for _, p := range depot.Products {
			m.AddRows(productRow(p))
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow() core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Reporte de stock por depósito", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func depotHeaderRow(depot repository.DepotStockView) core.Row {
	title := fmt.Sprintf("Depósito %d — %s", depot.DepotID, depot.DepotName)
	return row.New(9).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}
	right := header
	right.Align = align.Right
	return row.New(6).Add(
		col.New(1).Add(text.New("ID", header)),
		col.New(5).Add(text.New("Producto", header)),
		col.New(3).Add(text.New("Categoría", header)),
		col.New(2).Add(text.New("Precio", right)),
		col.New(1).Add(text.New("Stock", right)),
	)
}

func productRow(p repository.DepotProductView) core.Row {
	cell := props.Text{Size: 8}
	right := cell
	right.Align = align.Right
	return row.New(5).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.ID), cell)),
		col.New(5).Add(text.New(p.Name, cell)),
		col.New(3).Add(text.New(p.CategoryName, cell)),
		col.New(2).Add(text.New(p.Price.StringFixed(2), right)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.Stock), right)),
	)
}
