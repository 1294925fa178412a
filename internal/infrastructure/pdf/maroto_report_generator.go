// Package pdf implementa la versión imprimible del reporte de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Ventas  │  Rango de fechas              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total vendido / Cantidad de ventas / Promedio      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTES FRECUENTES: Nombre | Compras | Total gastado       │
//	│  TOP PRODUCTOS: Producto | Unidades vendidas                 │
//	└─────────────────────────────────────────────────────────────┘
//
// Las secciones de rankings solo aparecen si el reporte extendido fue
// generado (mismos datos que la respuesta JSON, nunca se recalculan aquí).
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/sales"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa sales.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, report *dto.ReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))

	if report.ReporteGenerado {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitleRow("Clientes frecuentes"))
		m.AddRows(customerHeaderRow())
		for _, c := range report.ClientesFrecuentes {
			m.AddRows(customerRow(c))
		}
		m.AddRows(line.NewRow(2))
		m.AddRows(sectionTitleRow("Productos más vendidos"))
		m.AddRows(productHeaderRow())
		for _, p := range report.TopProductos {
			m.AddRows(productRow(p))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y rango de fechas (der).
func headerRow(report *dto.ReportDTO) core.Row {
	rango := report.FechaInicio
	if report.EsPeriodo {
		rango = report.FechaInicio + " a " + report.FechaFin
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Reporte de Ventas", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(rango, props.Text{
				Size: 10, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// summaryRow: agregados base del período.
func summaryRow(report *dto.ReportDTO) core.Row {
	return row.New(16).Add(
		summaryCol("Total vendido", "$"+report.TotalVentas.StringFixed(2)),
		summaryCol("Cantidad de ventas", strconv.Itoa(report.CantidadVentas)),
		summaryCol("Promedio por venta", "$"+report.PromedioVenta.StringFixed(2)),
	)
}

func summaryCol(label, value string) core.Col {
	return col.New(4).Add(
		text.New(label, props.Text{Size: 8, Top: 2, Color: colorGray}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 7}),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2}),
		),
	)
}

func customerHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New("Cliente", props.Text{Style: fontstyle.Bold, Size: 9})),
		col.New(3).Add(text.New("Compras", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right})),
		col.New(3).Add(text.New("Total gastado", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right})),
	)
}

func customerRow(c dto.TopCustomerDTO) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(c.NombreCompleto, props.Text{Size: 9})),
		col.New(3).Add(text.New(strconv.Itoa(c.TotalCompras), props.Text{Size: 9, Align: align.Right})),
		col.New(3).Add(text.New("$"+c.TotalGastado.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
	)
}

func productHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 9})),
		col.New(4).Add(text.New("Unidades vendidas", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right})),
	)
}

func productRow(p dto.TopProductDTO) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(p.Producto, props.Text{Size: 9})),
		col.New(4).Add(text.New(strconv.Itoa(p.CantidadTotal), props.Text{Size: 9, Align: align.Right})),
	)
}
