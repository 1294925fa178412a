package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// SaleRepository define el puerto del libro de ventas.
// Es append-only: no existen Update ni Delete por diseño.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// ListByCustomer devuelve las compras de un cliente, más recientes primero.
	ListByCustomer(customerID string) ([]*entity.Sale, error)
}
