package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

const reportTopN = 5 // tamaño de los rankings del reporte extendido

const dateLayout = "2006-01-02"

// Window es la ventana de fechas resuelta de un reporte: [Start, End] ambos
// inclusive, en hora local. EsPeriodo indica que abarca más de un día
// calendario; Fallback que las fechas de entrada no se pudieron parsear y se
// sustituyó la ventana de hoy.
type Window struct {
	Start     time.Time
	End       time.Time
	EsPeriodo bool
	Fallback  bool
}

// ResolveWindow resuelve la ventana a partir de los parámetros `inicio` y
// `fin` (YYYY-MM-DD, hora local de `now`):
//
//   - ambos vacíos → el día de hoy completo, de medianoche local al instante
//     anterior a la medianoche siguiente;
//   - ambos presentes y válidos → [inicio 00:00:00, fin 23:59:59.999999999],
//     el último día entra COMPLETO en la ventana;
//   - parseo fallido → ventana de hoy, marcada como Fallback (el caller decide
//     si lo registra; al usuario no se le reporta error).
func ResolveWindow(now time.Time, inicio, fin string) Window {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	todayWindow := func(fallback bool) Window {
		return Window{
			Start:    today,
			End:      today.Add(24*time.Hour - time.Nanosecond),
			Fallback: fallback,
		}
	}

	if inicio == "" || fin == "" {
		return todayWindow(false)
	}
	start, err := time.ParseInLocation(dateLayout, inicio, loc)
	if err != nil {
		return todayWindow(true)
	}
	end, err := time.ParseInLocation(dateLayout, fin, loc)
	if err != nil {
		return todayWindow(true)
	}
	return Window{
		Start:     start,
		End:       end.Add(24*time.Hour - time.Nanosecond),
		EsPeriodo: !start.Equal(end),
	}
}

// ReportUseCase resume las ventas de una ventana de fechas: agregados base
// (total, cantidad, promedio) y, bajo demanda y según rol, los rankings top-5
// de clientes frecuentes y productos más vendidos.
type ReportUseCase struct {
	repo   repository.ReportRepository
	pdfGen ReportPDFGenerator
	log    *logger.Logger
}

// NewReportUseCase construye el motor de reportes.
func NewReportUseCase(repo repository.ReportRepository, pdfGen ReportPDFGenerator, log *logger.Logger) *ReportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{repo: repo, pdfGen: pdfGen, log: log}
}

// GetReport genera el reporte para el rol indicado.
//
// La sección extendida se incluye solo si: se pidió con generar_reporte,
// existe al menos una venta en la ventana y el rol puede generarla
// (administrador o gerente). En cualquier otro caso ReporteGenerado queda en
// false y solo van los agregados base.
func (uc *ReportUseCase) GetReport(ctx context.Context, in dto.ReportRequest, role string) (*dto.ReportDTO, error) {
	win := ResolveWindow(time.Now(), in.Inicio, in.Fin)
	if win.Fallback {
		uc.log.Warn().
			Str("inicio", in.Inicio).
			Str("fin", in.Fin).
			Msg("fechas de reporte inválidas, usando la ventana de hoy")
	}

	agg, err := uc.repo.GetSalesAggregates(ctx, win.Start, win.End)
	if err != nil {
		return nil, fmt.Errorf("reporte: agregados: %w", err)
	}

	promedio := decimal.Zero
	if agg.Count > 0 {
		promedio = agg.Total.Div(decimal.NewFromInt(int64(agg.Count))).Round(2)
	}

	out := &dto.ReportDTO{
		FechaInicio:    win.Start.Format(dateLayout),
		FechaFin:       win.End.Format(dateLayout),
		EsPeriodo:      win.EsPeriodo,
		TotalVentas:    agg.Total,
		CantidadVentas: agg.Count,
		PromedioVenta:  promedio,
	}

	if !in.GenerarReporte || agg.Count == 0 || !entity.CanGenerateReport(role) {
		return out, nil
	}

	// Rankings top-5 en paralelo (consultas independientes).
	type customersResult struct {
		rows []repository.TopCustomerResult
		err  error
	}
	type productsResult struct {
		rows []repository.TopProductResult
		err  error
	}
	custCh := make(chan customersResult, 1)
	prodCh := make(chan productsResult, 1)

	go func() {
		rows, err := uc.repo.GetTopCustomers(ctx, win.Start, win.End, reportTopN)
		custCh <- customersResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.GetTopProducts(ctx, win.Start, win.End, reportTopN)
		prodCh <- productsResult{rows, err}
	}()

	cust := <-custCh
	prod := <-prodCh
	if cust.err != nil {
		return nil, fmt.Errorf("reporte: clientes frecuentes: %w", cust.err)
	}
	if prod.err != nil {
		return nil, fmt.Errorf("reporte: top productos: %w", prod.err)
	}

	out.ReporteGenerado = true
	out.ClientesFrecuentes = make([]dto.TopCustomerDTO, 0, len(cust.rows))
	for _, r := range cust.rows {
		out.ClientesFrecuentes = append(out.ClientesFrecuentes, dto.TopCustomerDTO{
			NombreCompleto: r.FullName,
			TotalCompras:   r.Purchases,
			TotalGastado:   r.TotalSpent,
		})
	}
	out.TopProductos = make([]dto.TopProductDTO, 0, len(prod.rows))
	for _, r := range prod.rows {
		out.TopProductos = append(out.TopProductos, dto.TopProductDTO{
			Producto:      r.ProductName,
			CantidadTotal: r.Quantity,
		})
	}
	return out, nil
}

// GetReportPDF genera el reporte y lo renderiza como PDF imprimible.
func (uc *ReportUseCase) GetReportPDF(ctx context.Context, in dto.ReportRequest, role string) ([]byte, error) {
	report, err := uc.GetReport(ctx, in, role)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateReportPDF(ctx, report)
}
