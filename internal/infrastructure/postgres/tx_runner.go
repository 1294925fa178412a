package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var (
	_ auth.TxRunner  = (*TxRunner)(nil)
	_ sales.TxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta casos de uso multi-repositorio dentro de una transacción
// pgx. Los repos que recibe el callback están construidos sobre la tx, de modo
// que todas sus operaciones ven el mismo snapshot y se confirman juntas.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner sobre el pool compartido.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunUserTx alta atómica de usuario + perfil de rol.
func (t *TxRunner) RunUserTx(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
) error) error {
	return t.run(ctx, func(q Querier) error {
		return fn(NewUserRepository(q), NewProfileRepository(q))
	})
}

// RunSaleTx registro de venta: verificación de referencias + INSERT atómicos.
func (t *TxRunner) RunSaleTx(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	return t.run(ctx, func(q Querier) error {
		return fn(NewSaleRepository(q), NewProductRepository(q), NewCustomerRepository(q))
	})
}

func (t *TxRunner) run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
