package entity

import "time"

// Supplier representa un proveedor. Entidad independiente: los productos la
// referencian vía muchos-a-muchos sin propiedad.
type Supplier struct {
	ID        string
	Name      string
	Company   string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}
