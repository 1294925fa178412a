package entity

import "time"

// Customer representa un cliente. UserID enlaza opcionalmente con una identidad
// de login (autoservicio); queda vacío si el User asociado se elimina.
type Customer struct {
	ID        string
	UserID    string // vacío si no tiene cuenta de acceso
	FirstName string
	LastName  string
	Email     string // único
	Phone     string
	Address   string
	CreatedAt time.Time
}

// FullName devuelve "nombre apellido" (clave de agrupación en reportes).
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
