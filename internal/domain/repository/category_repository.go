package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CategoryWithCount categoría anotada con su número de productos (listados).
type CategoryWithCount struct {
	Category     entity.Category
	ProductCount int
}

// CategoryRepository define el puerto de persistencia para Category.
// Delete elimina en cascada los productos dependientes (FK en la DB).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]CategoryWithCount, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
