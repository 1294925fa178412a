package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/sales"
)

// ReportHandler maneja el reporte de ventas y su exportación a PDF.
type ReportHandler struct {
	uc *sales.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *sales.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get godoc
// @Summary      Reporte de ventas por rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        inicio           query  string  false  "YYYY-MM-DD (defecto: hoy)"
// @Param        fin              query  string  false  "YYYY-MM-DD (defecto: hoy)"
// @Param        generar_reporte  query  bool    false  "incluir rankings top-5"
// @Success      200  {object}  dto.ReportDTO
// @Router       /api/sales/report [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	in := dto.ReportRequest{
		Inicio:         c.Query("inicio"),
		Fin:            c.Query("fin"),
		GenerarReporte: c.QueryBool("generar_reporte"),
	}
	out, err := h.uc.GetReport(c.Context(), in, GetRole(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetPDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Router       /api/sales/report/pdf [get]
func (h *ReportHandler) GetPDF(c *fiber.Ctx) error {
	in := dto.ReportRequest{
		Inicio:         c.Query("inicio"),
		Fin:            c.Query("fin"),
		GenerarReporte: c.QueryBool("generar_reporte"),
	}
	pdfBytes, err := h.uc.GetReportPDF(c.Context(), in, GetRole(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte_ventas.pdf"`)
	return c.Send(pdfBytes)
}
