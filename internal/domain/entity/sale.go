package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es un hecho inmutable del libro de ventas: solo se crea y se consulta.
// UnitPrice es un snapshot del precio del producto al momento de la venta;
// Total = Quantity × UnitPrice se calcula siempre en el servidor.
type Sale struct {
	ID         string
	CustomerID string
	SellerID   string // vacío si el vendedor fue eliminado (SET NULL en la DB)
	ProductID  string
	Quantity   int // >= 1
	UnitPrice  decimal.Decimal
	Total      decimal.Decimal
	SoldAt     time.Time
}
