package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del panel principal: conteos globales de
// entidades y el total vendido hoy (ventana local de medianoche a medianoche).
type DashboardUseCase struct {
	repo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary construye el DashboardDTO. Dos consultas en paralelo:
// conteos de entidades y agregado de ventas de hoy.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardDTO, error) {
	win := ResolveWindow(time.Now(), "", "")

	type countsResult struct {
		counts repository.EntityCounts
		err    error
	}
	type salesResult struct {
		agg repository.SalesAggregates
		err error
	}
	countsCh := make(chan countsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		counts, err := uc.repo.CountEntities(ctx)
		countsCh <- countsResult{counts, err}
	}()
	go func() {
		agg, err := uc.repo.GetSalesAggregates(ctx, win.Start, win.End)
		salesCh <- salesResult{agg, err}
	}()

	counts := <-countsCh
	today := <-salesCh
	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}

	return &dto.DashboardDTO{
		TotalProductos:   counts.counts.Products,
		TotalCategorias:  counts.counts.Categories,
		TotalProveedores: counts.counts.Suppliers,
		TotalClientes:    counts.counts.Customers,
		VentasHoy:        today.agg.Total,
	}, nil
}
