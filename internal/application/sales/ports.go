package sales

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta el registro de una venta dentro de una transacción:
// la verificación de producto/cliente y el INSERT ven el mismo snapshot.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	RunSaleTx(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// ReportPDFGenerator genera la versión imprimible del reporte de ventas.
// Lo implementa pdf.MarotoReportGenerator.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *dto.ReportDTO) ([]byte, error)
}
