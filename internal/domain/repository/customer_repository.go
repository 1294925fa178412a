package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetByUserID resuelve el cliente enlazado a una identidad de login
	// (autoservicio: mi perfil, mis compras). nil si no hay enlace.
	GetByUserID(userID string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
