package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de reportes
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	agg       repository.SalesAggregates
	customers []repository.TopCustomerResult
	products  []repository.TopProductResult

	aggCalls  int
	topCalls  int
	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeReportRepo) GetSalesAggregates(_ context.Context, start, end time.Time) (repository.SalesAggregates, error) {
	f.aggCalls++
	f.lastStart, f.lastEnd = start, end
	return f.agg, nil
}

func (f *fakeReportRepo) GetTopCustomers(_ context.Context, _, _ time.Time, limit int) ([]repository.TopCustomerResult, error) {
	f.topCalls++
	if len(f.customers) > limit {
		return f.customers[:limit], nil
	}
	return f.customers, nil
}

func (f *fakeReportRepo) GetTopProducts(_ context.Context, _, _ time.Time, limit int) ([]repository.TopProductResult, error) {
	f.topCalls++
	if len(f.products) > limit {
		return f.products[:limit], nil
	}
	return f.products, nil
}

func (f *fakeReportRepo) CountEntities(context.Context) (repository.EntityCounts, error) {
	return repository.EntityCounts{Products: 3, Categories: 2, Suppliers: 1, Customers: 4}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ResolveWindow
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveWindow_SinFechas_VentanaDeHoy(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.Local)
	win := sales.ResolveWindow(now, "", "")

	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local), win.Start)
	assert.Equal(t, time.Date(2024, 6, 15, 23, 59, 59, 999999999, time.Local), win.End)
	assert.False(t, win.EsPeriodo, "un solo día no es período")
	assert.False(t, win.Fallback)
}

func TestResolveWindow_RangoExplicito_UltimoDiaCompleto(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	win := sales.ResolveWindow(now, "2024-06-01", "2024-06-10")

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), win.Start)
	assert.Equal(t, time.Date(2024, 6, 10, 23, 59, 59, 999999999, time.Local), win.End,
		"una venta a las 23:59 del último día debe entrar en la ventana")
	assert.True(t, win.EsPeriodo)
	assert.False(t, win.Fallback)
}

func TestResolveWindow_InicioIgualAFin_NoEsPeriodo(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	win := sales.ResolveWindow(now, "2024-06-10", "2024-06-10")

	assert.False(t, win.EsPeriodo)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local), win.Start)
}

func TestResolveWindow_FechaInvalida_FallbackAHoy(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	win := sales.ResolveWindow(now, "2024-13-40", "2024-06-10")

	assert.True(t, win.Fallback, "fecha imposible debe marcar fallback")
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local), win.Start)
	assert.False(t, win.EsPeriodo)
}

func TestResolveWindow_FinInvalido_FallbackAHoy(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	win := sales.ResolveWindow(now, "2024-06-01", "no-es-fecha")

	assert.True(t, win.Fallback)
}

func TestResolveWindow_SoloUnaFecha_VentanaDeHoy(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)
	win := sales.ResolveWindow(now, "2024-06-01", "")

	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local), win.Start,
		"con una sola fecha se usa la ventana de hoy")
	assert.False(t, win.Fallback)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetReport
// ──────────────────────────────────────────────────────────────────────────────

func reportFixture(agg repository.SalesAggregates) (*sales.ReportUseCase, *fakeReportRepo) {
	repo := &fakeReportRepo{
		agg: agg,
		customers: []repository.TopCustomerResult{
			{FullName: "Ana Pérez", Purchases: 4, TotalSpent: decimal.RequireFromString("120.00")},
			{FullName: "Luis Gómez", Purchases: 2, TotalSpent: decimal.RequireFromString("80.00")},
		},
		products: []repository.TopProductResult{
			{ProductName: "Café 500g", Quantity: 12},
		},
	}
	return sales.NewReportUseCase(repo, nil, nil), repo
}

func TestGetReport_AgregadosBase(t *testing.T) {
	uc, _ := reportFixture(repository.SalesAggregates{
		Total: decimal.RequireFromString("200.00"), Count: 8,
	})

	out, err := uc.GetReport(context.Background(), dto.ReportRequest{Inicio: "2024-06-01", Fin: "2024-06-30"}, entity.RoleVendedor)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01", out.FechaInicio)
	assert.Equal(t, "2024-06-30", out.FechaFin)
	assert.True(t, out.EsPeriodo)
	assert.Equal(t, 8, out.CantidadVentas)
	assert.True(t, out.PromedioVenta.Equal(decimal.RequireFromString("25.00")))
	assert.False(t, out.ReporteGenerado)
}

func TestGetReport_SinVentas_PromedioCero(t *testing.T) {
	uc, _ := reportFixture(repository.SalesAggregates{Total: decimal.Zero, Count: 0})

	out, err := uc.GetReport(context.Background(), dto.ReportRequest{GenerarReporte: true}, entity.RoleAdministrador)
	require.NoError(t, err)

	assert.Equal(t, 0, out.CantidadVentas)
	assert.True(t, out.PromedioVenta.IsZero(), "sin ventas el promedio es cero, no una división por cero")
	assert.False(t, out.ReporteGenerado, "sin ventas no hay sección extendida aunque se pida")
	assert.Empty(t, out.ClientesFrecuentes)
}

func TestGetReport_SeccionExtendida_RolPermitido(t *testing.T) {
	uc, repo := reportFixture(repository.SalesAggregates{
		Total: decimal.RequireFromString("200.00"), Count: 6,
	})

	out, err := uc.GetReport(context.Background(), dto.ReportRequest{GenerarReporte: true}, entity.RoleGerente)
	require.NoError(t, err)

	assert.True(t, out.ReporteGenerado)
	require.Len(t, out.ClientesFrecuentes, 2)
	assert.Equal(t, "Ana Pérez", out.ClientesFrecuentes[0].NombreCompleto)
	require.Len(t, out.TopProductos, 1)
	assert.Equal(t, 12, out.TopProductos[0].CantidadTotal)
	assert.Equal(t, 2, repo.topCalls, "ambos rankings deben consultarse")
}

func TestGetReport_SeccionExtendida_VendedorNoLaRecibe(t *testing.T) {
	uc, repo := reportFixture(repository.SalesAggregates{
		Total: decimal.RequireFromString("200.00"), Count: 6,
	})

	out, err := uc.GetReport(context.Background(), dto.ReportRequest{GenerarReporte: true}, entity.RoleVendedor)
	require.NoError(t, err)

	assert.False(t, out.ReporteGenerado, "vendedor recibe solo los agregados base")
	assert.Empty(t, out.ClientesFrecuentes)
	assert.Equal(t, 0, repo.topCalls, "los rankings ni siquiera deben consultarse")
}

func TestGetReport_SinGenerarReporte_SoloAgregados(t *testing.T) {
	uc, repo := reportFixture(repository.SalesAggregates{
		Total: decimal.RequireFromString("50.00"), Count: 2,
	})

	out, err := uc.GetReport(context.Background(), dto.ReportRequest{}, entity.RoleAdministrador)
	require.NoError(t, err)

	assert.False(t, out.ReporteGenerado)
	assert.Equal(t, 0, repo.topCalls)
}

func TestGetReport_AliasAdminRecibeSeccionExtendida(t *testing.T) {
	uc, _ := reportFixture(repository.SalesAggregates{
		Total: decimal.RequireFromString("10.00"), Count: 1,
	})

	out, err := uc.GetReport(context.Background(), dto.ReportRequest{GenerarReporte: true}, "admin")
	require.NoError(t, err)
	assert.True(t, out.ReporteGenerado)
}

func TestGetReport_FechasInvalidas_UsaHoySinError(t *testing.T) {
	uc, repo := reportFixture(repository.SalesAggregates{Total: decimal.Zero, Count: 0})

	out, err := uc.GetReport(context.Background(), dto.ReportRequest{Inicio: "ayer", Fin: "hoy"}, entity.RoleGerente)
	require.NoError(t, err, "fechas inválidas no producen error para el caller")

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, out.FechaInicio)
	assert.False(t, out.EsPeriodo)
	assert.Equal(t, 1, repo.aggCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_ConteosYVentasDeHoy(t *testing.T) {
	repo := &fakeReportRepo{agg: repository.SalesAggregates{
		Total: decimal.RequireFromString("99.90"), Count: 3,
	}}
	uc := sales.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalProductos)
	assert.Equal(t, 2, out.TotalCategorias)
	assert.Equal(t, 1, out.TotalProveedores)
	assert.Equal(t, 4, out.TotalClientes)
	assert.True(t, out.VentasHoy.Equal(decimal.RequireFromString("99.90")))

	// La ventana consultada debe ser el día de hoy completo.
	now := time.Now()
	assert.Equal(t, now.Day(), repo.lastStart.Day())
	assert.Equal(t, 0, repo.lastStart.Hour())
}
