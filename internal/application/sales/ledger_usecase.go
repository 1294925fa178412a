// Package sales contiene el núcleo del negocio: el libro de ventas append-only
// y el motor de reportes por rango de fechas.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// LedgerUseCase registra ventas inmutables con campos financieros calculados
// por el sistema. No existe edición ni borrado de ventas: el libro es
// append-only (inmutabilidad contable).
type LedgerUseCase struct {
	tx           TxRunner
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

// NewLedgerUseCase construye el caso de uso del libro de ventas.
func NewLedgerUseCase(tx TxRunner, saleRepo repository.SaleRepository, customerRepo repository.CustomerRepository) *LedgerUseCase {
	return &LedgerUseCase{tx: tx, saleRepo: saleRepo, customerRepo: customerRepo}
}

// RecordSale registra una venta a nombre del vendedor autenticado.
//
// Reglas:
//   - cantidad >= 1; se rechaza antes de tocar la DB.
//   - cliente y producto deben existir.
//   - precio unitario: el explícito si llega; si no, snapshot del precio
//     actual del producto. El snapshot no se recalcula nunca: cambios
//     posteriores del precio del producto no afectan ventas pasadas.
//   - total = cantidad × precio unitario, calculado aquí siempre; cualquier
//     total aportado por el caller se ignora.
//
// El stock del producto NO se descuenta al vender (comportamiento heredado
// del sistema).
func (uc *LedgerUseCase) RecordSale(ctx context.Context, sellerID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var sale *entity.Sale
	err := uc.tx.RunSaleTx(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
	) error {
		customer, err := customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		unitPrice := product.Price
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}
		total := unitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))

		sale = &entity.Sale{
			ID:         uuid.New().String(),
			CustomerID: customer.ID,
			SellerID:   sellerID,
			ProductID:  product.ID,
			Quantity:   in.Quantity,
			UnitPrice:  unitPrice,
			Total:      total,
			SoldAt:     time.Now(),
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID consulta una venta del libro.
func (uc *LedgerUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// ListMyPurchases devuelve las compras del cliente enlazado a la identidad del
// caller (rol cliente), más recientes primero. Sin cliente enlazado: lista vacía.
func (uc *LedgerUseCase) ListMyPurchases(userID string) ([]dto.SaleResponse, error) {
	customer, err := uc.customerRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return []dto.SaleResponse{}, nil
	}
	list, err := uc.saleRepo.ListByCustomer(customer.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		SellerID:   s.SellerID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		UnitPrice:  s.UnitPrice,
		Total:      s.Total,
		SoldAt:     s.SoldAt,
	}
}
