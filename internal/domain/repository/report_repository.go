package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesAggregates agregados base de un rango de fechas del libro de ventas.
type SalesAggregates struct {
	Total decimal.Decimal // SUM(total), cero si no hay ventas
	Count int
}

// TopCustomerResult cliente frecuente: gasto acumulado y número de compras.
type TopCustomerResult struct {
	FullName   string
	Purchases  int
	TotalSpent decimal.Decimal
}

// TopProductResult producto más vendido por unidades.
type TopProductResult struct {
	ProductName string
	Quantity    int
}

// EntityCounts conteos globales para el dashboard.
type EntityCounts struct {
	Products   int
	Categories int
	Suppliers  int
	Customers  int
}

// ReportRepository define las consultas de solo lectura del motor de reportes.
type ReportRepository interface {
	// GetSalesAggregates suma y cuenta las ventas con sold_at dentro de [start, end].
	GetSalesAggregates(ctx context.Context, start, end time.Time) (SalesAggregates, error)

	// GetTopCustomers agrupa por nombre completo del cliente y ordena por gasto
	// descendente. limit controla el tamaño del ranking (5 en el reporte extendido).
	GetTopCustomers(ctx context.Context, start, end time.Time, limit int) ([]TopCustomerResult, error)

	// GetTopProducts agrupa por nombre de producto y ordena por unidades vendidas.
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductResult, error)

	// CountEntities devuelve los totales de productos, categorías, proveedores y clientes.
	CountEntities(ctx context.Context) (EntityCounts, error)
}
