package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
// UnitPrice es opcional: si falta, se toma el precio actual del producto.
// El total NUNCA lo aporta el caller: siempre se calcula en el servidor.
type CreateSaleRequest struct {
	CustomerID string           `json:"customer_id" validate:"required,uuid"`
	ProductID  string           `json:"product_id" validate:"required,uuid"`
	Quantity   int              `json:"quantity" validate:"required,min=1"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	SellerID   string          `json:"seller_id,omitempty"`
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Total      decimal.Decimal `json:"total"`
	SoldAt     time.Time       `json:"sold_at"`
}
