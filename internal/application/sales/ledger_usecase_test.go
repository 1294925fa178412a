package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error { f.sales = append(f.sales, s); return nil }

func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) ListByCustomer(customerID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error             { return nil }
func (f *fakeProductRepo) Delete(string) error                      { return nil }

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) GetByUserID(userID string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCustomerRepo) GetByEmail(string) (*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) List(int, int) ([]*entity.Customer, error)   { return nil, nil }
func (f *fakeCustomerRepo) Update(*entity.Customer) error               { return nil }
func (f *fakeCustomerRepo) Delete(string) error                         { return nil }

// fakeTx pasa los fakes al callback sin transacción real.
type fakeTx struct {
	saleRepo     *fakeSaleRepo
	productRepo  *fakeProductRepo
	customerRepo *fakeCustomerRepo
}

func (f *fakeTx) RunSaleTx(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	return fn(f.saleRepo, f.productRepo, f.customerRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	custID = "11111111-1111-1111-1111-111111111111"
	prodID = "22222222-2222-2222-2222-222222222222"
	sellID = "33333333-3333-3333-3333-333333333333"
	userID = "44444444-4444-4444-4444-444444444444"
)

func newLedgerFixture(t *testing.T) (*sales.LedgerUseCase, *fakeSaleRepo) {
	t.Helper()
	saleRepo := &fakeSaleRepo{}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		prodID: {ID: prodID, Name: "Café 500g", Price: decimal.RequireFromString("18.50"), Stock: 10},
	}}
	customerRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		custID: {ID: custID, UserID: userID, FirstName: "Ana", LastName: "Pérez", Email: "ana@example.com"},
	}}
	tx := &fakeTx{saleRepo: saleRepo, productRepo: productRepo, customerRepo: customerRepo}
	return sales.NewLedgerUseCase(tx, saleRepo, customerRepo), saleRepo
}

func saleReq(quantity int) dto.CreateSaleRequest {
	return dto.CreateSaleRequest{CustomerID: custID, ProductID: prodID, Quantity: quantity}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_TotalEsCantidadPorPrecio(t *testing.T) {
	uc, repo := newLedgerFixture(t)

	out, err := uc.RecordSale(context.Background(), sellID, saleReq(3))
	require.NoError(t, err)

	assert.True(t, out.UnitPrice.Equal(decimal.RequireFromString("18.50")),
		"el precio unitario debe ser el snapshot del precio del producto")
	assert.True(t, out.Total.Equal(decimal.RequireFromString("55.50")),
		"total = 3 × 18.50")
	assert.Equal(t, sellID, out.SellerID)
	require.Len(t, repo.sales, 1)
	assert.True(t, repo.sales[0].Total.Equal(out.Total))
}

func TestRecordSale_CantidadUno(t *testing.T) {
	uc, _ := newLedgerFixture(t)

	out, err := uc.RecordSale(context.Background(), sellID, saleReq(1))
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(out.UnitPrice), "con cantidad 1 el total es el precio unitario")
}

func TestRecordSale_CantidadGrande(t *testing.T) {
	uc, _ := newLedgerFixture(t)

	out, err := uc.RecordSale(context.Background(), sellID, saleReq(10000))
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("185000.00")),
		"decimal no debe perder precisión con cantidades grandes")
}

func TestRecordSale_PrecioExplicitoGanaAlSnapshot(t *testing.T) {
	uc, _ := newLedgerFixture(t)

	price := decimal.RequireFromString("15.00")
	in := saleReq(2)
	in.UnitPrice = &price

	out, err := uc.RecordSale(context.Background(), sellID, in)
	require.NoError(t, err)
	assert.True(t, out.UnitPrice.Equal(price))
	assert.True(t, out.Total.Equal(decimal.RequireFromString("30.00")))
}

func TestRecordSale_CantidadCero_RechazadaSinPersistir(t *testing.T) {
	uc, repo := newLedgerFixture(t)

	_, err := uc.RecordSale(context.Background(), sellID, saleReq(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.sales, "nada debe quedar en el libro")
}

func TestRecordSale_CantidadNegativa_Rechazada(t *testing.T) {
	uc, repo := newLedgerFixture(t)

	_, err := uc.RecordSale(context.Background(), sellID, saleReq(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.sales)
}

func TestRecordSale_PrecioExplicitoNegativo_Rechazado(t *testing.T) {
	uc, repo := newLedgerFixture(t)

	price := decimal.RequireFromString("-1.00")
	in := saleReq(1)
	in.UnitPrice = &price

	_, err := uc.RecordSale(context.Background(), sellID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.sales)
}

func TestRecordSale_ClienteInexistente_Rechazado(t *testing.T) {
	uc, repo := newLedgerFixture(t)

	in := saleReq(1)
	in.CustomerID = "99999999-9999-9999-9999-999999999999"

	_, err := uc.RecordSale(context.Background(), sellID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.sales)
}

func TestRecordSale_ProductoInexistente_Rechazado(t *testing.T) {
	uc, repo := newLedgerFixture(t)

	in := saleReq(1)
	in.ProductID = "99999999-9999-9999-9999-999999999999"

	_, err := uc.RecordSale(context.Background(), sellID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.sales)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de lectura
// ──────────────────────────────────────────────────────────────────────────────

func TestListMyPurchases_DevuelveVentasDelClienteEnlazado(t *testing.T) {
	uc, _ := newLedgerFixture(t)

	_, err := uc.RecordSale(context.Background(), sellID, saleReq(2))
	require.NoError(t, err)

	out, err := uc.ListMyPurchases(userID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, custID, out[0].CustomerID)
}

func TestListMyPurchases_SinClienteEnlazado_ListaVacia(t *testing.T) {
	uc, _ := newLedgerFixture(t)

	out, err := uc.ListMyPurchases("55555555-5555-5555-5555-555555555555")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out, "debe ser lista vacía, no null")
}

func TestGetByID_VentaInexistente(t *testing.T) {
	uc, _ := newLedgerFixture(t)

	_, err := uc.GetByID("99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
