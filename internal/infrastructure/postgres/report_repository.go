package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura del motor de reportes. A diferencia de
// los repos CRUD, recibe context: los reportes agregan sobre tablas grandes y
// deben poder cancelarse con la petición.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de consultas de reporte.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetSalesAggregates suma y cuenta las ventas con sold_at en [start, end].
func (r *ReportRepo) GetSalesAggregates(ctx context.Context, start, end time.Time) (repository.SalesAggregates, error) {
	query := `
		SELECT COALESCE(SUM(total), 0), COUNT(*)
		FROM sales
		WHERE sold_at BETWEEN $1 AND $2`
	var agg repository.SalesAggregates
	if err := r.q.QueryRow(ctx, query, start, end).Scan(&agg.Total, &agg.Count); err != nil {
		return repository.SalesAggregates{}, fmt.Errorf("sales aggregates: %w", err)
	}
	return agg, nil
}

// GetTopCustomers ranking de clientes por gasto acumulado en el rango.
func (r *ReportRepo) GetTopCustomers(ctx context.Context, start, end time.Time, limit int) ([]repository.TopCustomerResult, error) {
	query := `
		SELECT c.first_name || ' ' || c.last_name, COUNT(*), SUM(s.total)
		FROM sales s
		JOIN customers c ON c.id = s.customer_id
		WHERE s.sold_at BETWEEN $1 AND $2
		GROUP BY c.id, c.first_name, c.last_name
		ORDER BY SUM(s.total) DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	defer rows.Close()
	var list []repository.TopCustomerResult
	for rows.Next() {
		var item repository.TopCustomerResult
		if err := rows.Scan(&item.FullName, &item.Purchases, &item.TotalSpent); err != nil {
			return nil, fmt.Errorf("scan top customer: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// GetTopProducts ranking de productos por unidades vendidas en el rango.
func (r *ReportRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT p.name, SUM(s.quantity)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.sold_at BETWEEN $1 AND $2
		GROUP BY p.id, p.name
		ORDER BY SUM(s.quantity) DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductResult
	for rows.Next() {
		var item repository.TopProductResult
		if err := rows.Scan(&item.ProductName, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// CountEntities totales globales para el dashboard, en una sola pasada.
func (r *ReportRepo) CountEntities(ctx context.Context) (repository.EntityCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM suppliers),
			(SELECT COUNT(*) FROM customers)`
	var counts repository.EntityCounts
	err := r.q.QueryRow(ctx, query).Scan(&counts.Products, &counts.Categories, &counts.Suppliers, &counts.Customers)
	if err != nil {
		return repository.EntityCounts{}, fmt.Errorf("entity counts: %w", err)
	}
	return counts, nil
}
