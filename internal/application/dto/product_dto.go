package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepotStockInput par (depósito, cantidad) tal como lo envía el cliente.
// Las claves JSON conservan el contrato original del API.
type DepotStockInput struct {
	DepotID  int64 `json:"IdDeposito" form:"IdDeposito"`
	Quantity int64 `json:"cantidad" form:"cantidad"`
}

// CreateProductRequest entrada para crear un producto con su lote y stock
// inicial. Las fechas van como "2006-01-02". En multipart, depositos llega
// como string JSON y se normaliza en el handler.
type CreateProductRequest struct {
	Name            string            `json:"nombre" form:"nombre"`
	Description     string            `json:"descripcion" form:"descripcion"`
	Price           decimal.Decimal   `json:"precio" form:"precio"`
	CategoryID      int64             `json:"categoriaId" form:"categoriaId"`
	ElaborationDate string            `json:"fechaelaboracion" form:"fechaelaboracion"`
	ExpiryDate      string            `json:"fechaVencimiento" form:"fechaVencimiento"`
	Depots          []DepotStockInput `json:"depositos"`
}

// UpdateProductRequest entrada para actualizar un producto. Solo los campos
// presentes sobreescriben; depositos asienta ajustes UPD y removeDepositos
// desactiva pares lote × depósito.
type UpdateProductRequest struct {
	Name         *string           `json:"nombre" form:"nombre"`
	Description  *string           `json:"descripcion" form:"descripcion"`
	Price        *decimal.Decimal  `json:"precio" form:"precio"`
	CategoryID   *int64            `json:"categoriaId" form:"categoriaId"`
	Depots       []DepotStockInput `json:"depositos"`
	RemoveDepots []int64           `json:"removeDepositos"`
}

// ProductResponse salida de un producto (sin stock: el stock se consulta por
// depósito vía findAll/findOne).
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Active      bool            `json:"activo"`
	ImageURL    *string         `json:"imagenURL"`
	CategoryID  *int64          `json:"categoriaId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// MovementResponse una entrada del libro de movimientos.
type MovementResponse struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transactionId"`
	ProductID     int64     `json:"idProducto"`
	BatchID       int64     `json:"idLote"`
	DepotID       int64     `json:"idDeposito"`
	Type          string    `json:"tipo"`
	Quantity      int64     `json:"cantidad"`
	CreatedAt     time.Time `json:"createdAt"`
}
