package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente.
// UserID enlaza opcionalmente con una cuenta de acceso existente.
type CreateCustomerRequest struct {
	UserID    string `json:"user_id" validate:"omitempty,uuid"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,max=15"`
	Address   string `json:"address" validate:"omitempty,max=500"`
}

// UpdateCustomerRequest entrada para editar un cliente (también autoservicio).
type UpdateCustomerRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=15"`
	Address   *string `json:"address" validate:"omitempty,max=500"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
