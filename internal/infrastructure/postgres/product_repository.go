package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
// La relación muchos-a-muchos con proveedores vive en product_suppliers y se
// reemplaza completa en cada Create/Update.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto y sus asociaciones de proveedor.
func (r *ProductRepo) Create(product *entity.Product) error {
	ctx := context.Background()
	query := `
		INSERT INTO products (id, name, description, price, stock, category_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return r.replaceSuppliers(ctx, product.ID, product.SupplierIDs)
}

// GetByID obtiene un producto con sus proveedores asociados.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, p.active,
		       p.created_at, p.updated_at,
		       COALESCE(array_agg(ps.supplier_id::text) FILTER (WHERE ps.supplier_id IS NOT NULL), '{}')
		FROM products p
		LEFT JOIN product_suppliers ps ON ps.product_id = p.id
		WHERE p.id = $1
		GROUP BY p.id`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &p.Active,
		&p.CreatedAt, &p.UpdatedAt, &p.SupplierIDs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos paginados por nombre, con sus proveedores.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, p.active,
		       p.created_at, p.updated_at,
		       COALESCE(array_agg(ps.supplier_id::text) FILTER (WHERE ps.supplier_id IS NOT NULL), '{}')
		FROM products p
		LEFT JOIN product_suppliers ps ON ps.product_id = p.id
		GROUP BY p.id
		ORDER BY p.name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
			&p.Active, &p.CreatedAt, &p.UpdatedAt, &p.SupplierIDs); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto y reemplaza sus asociaciones de proveedor.
func (r *ProductRepo) Update(product *entity.Product) error {
	ctx := context.Background()
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, category_id = $6,
		    active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.Active, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product: %w", err)
	}
	return r.replaceSuppliers(ctx, product.ID, product.SupplierIDs)
}

// Delete elimina un producto; sus ventas y asociaciones caen en cascada.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) replaceSuppliers(ctx context.Context, productID string, supplierIDs []string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_suppliers WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear product suppliers: %w", err)
	}
	for _, sid := range supplierIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO product_suppliers (product_id, supplier_id) VALUES ($1, $2)`,
			productID, sid,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("link supplier %s: %w", sid, err)
		}
	}
	return nil
}
