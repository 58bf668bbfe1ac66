package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DepotProductView es un producto con su stock dentro de un depósito.
type DepotProductView struct {
	ID           int64           `json:"id"`
	Name         string          `json:"nombre"`
	Description  string          `json:"descripcion"`
	Price        decimal.Decimal `json:"precio"`
	Stock        int64           `json:"stock"`
	CategoryName string          `json:"nombreCategoria"`
	Active       bool            `json:"activo"`
	ImageURL     *string         `json:"imagenURL"`
}

// DepotStockView agrupa los productos activos en stock de un depósito.
type DepotStockView struct {
	DepotID   int64              `json:"idDeposito"`
	DepotName string             `json:"nombreDeposito"`
	Products  []DepotProductView `json:"productos"`
}

// ProductDepotStock es el stock de un producto en un depósito concreto.
type ProductDepotStock struct {
	DepotID   int64  `json:"idDeposito"`
	DepotName string `json:"nombreDeposito"`
	Stock     int64  `json:"stock"`
}

// ProductDetailView es el detalle de un producto con su stock por depósito.
type ProductDetailView struct {
	ID           int64               `json:"idProducto"`
	Name         string              `json:"nombre"`
	Description  string              `json:"descripcion"`
	Price        decimal.Decimal     `json:"precio"`
	CategoryName string              `json:"categoria"`
	Active       bool                `json:"activo"`
	ImageURL     *string             `json:"imagenURL"`
	Depots       []ProductDepotStock `json:"depositos"`
}

// ProductQueryRepository define las consultas de solo lectura que reagrupan
// producto × lote × lote_x_deposito × deposito para presentación. Corren
// fuera de cualquier transacción de escritura.
type ProductQueryRepository interface {
	// FindAllByDepot devuelve el stock activo agrupado por depósito.
	FindAllByDepot(ctx context.Context) ([]DepotStockView, error)
	// FindOne devuelve nil (sin error) si el producto no tiene stock activo.
	FindOne(ctx context.Context, id int64) (*ProductDetailView, error)
}
