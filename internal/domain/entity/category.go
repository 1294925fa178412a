package entity

import "time"

// Category representa una categoría de productos.
// Eliminar una categoría elimina en cascada sus productos (FK en la DB).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
