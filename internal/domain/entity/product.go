package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Price y Stock nunca son negativos (CHECK en la DB además de la validación de entrada).
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, 2 decimales
	Stock       int
	CategoryID  string   // obligatoria; al borrar la categoría se borra el producto
	SupplierIDs []string // cero o más proveedores
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
