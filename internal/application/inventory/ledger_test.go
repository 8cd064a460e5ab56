package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pedidos-api/internal/application/inventory"
	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
)

// Fakes mínimos: el ledger solo necesita productos y movimientos.

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) Delete(_ context.Context, id int64) (bool, error) { return false, nil }

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, id int64, quantity int64) error {
	p, ok := r.products[id]
	if !ok || p.Stock < quantity {
		return domain.NewProductUnavailable(id, domain.ErrInsufficientStock)
	}
	p.Stock -= quantity
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	cm := *m
	r.movements = append(r.movements, &cm)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(_ context.Context, productID int64, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func newLedger(stock int64) (*inventory.Ledger, *fakeProductRepo, *fakeMovementRepo) {
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "teclado", Stock: stock},
	}}
	movements := &fakeMovementRepo{}
	return inventory.NewLedger(products, movements), products, movements
}

func TestCheckAvailability(t *testing.T) {
	ledger, _, _ := newLedger(5)
	ctx := context.Background()

	product, available, err := ledger.CheckAvailability(ctx, 1, 3)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.True(t, available)

	_, available, err = ledger.CheckAvailability(ctx, 1, 6)
	require.NoError(t, err)
	assert.False(t, available, "cantidad mayor al stock")

	product, available, err = ledger.CheckAvailability(ctx, 99, 1)
	require.NoError(t, err)
	assert.Nil(t, product, "producto inexistente devuelve nil sin error")
	assert.False(t, available)
}

func TestCheckAvailability_CantidadInvalida(t *testing.T) {
	ledger, _, _ := newLedger(5)
	_, _, err := ledger.CheckAvailability(context.Background(), 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReserveAndDecrement_Exitoso(t *testing.T) {
	ledger, products, movements := newLedger(5)
	orderID := int64(10)

	err := ledger.ReserveAndDecrement(context.Background(), products, movements, "tx-1", &orderID, 1, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(2), products.products[1].Stock)
	require.Len(t, movements.movements, 1)
	mov := movements.movements[0]
	assert.Equal(t, "tx-1", mov.TransactionID)
	assert.Equal(t, entity.MovementTypeOUT, mov.Type)
	assert.Equal(t, int64(3), mov.Quantity)
	assert.Equal(t, orderID, *mov.OrderID)
	assert.NotEmpty(t, mov.ID)
}

func TestReserveAndDecrement_StockInsuficiente(t *testing.T) {
	ledger, products, movements := newLedger(2)

	err := ledger.ReserveAndDecrement(context.Background(), products, movements, "tx-1", nil, 1, 3)
	var unavailable *domain.ProductUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, int64(1), unavailable.ProductID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(2), products.products[1].Stock, "sin decremento parcial")
	assert.Empty(t, movements.movements)
}

func TestReserveAndDecrement_ProductoInexistente(t *testing.T) {
	ledger, products, movements := newLedger(2)

	err := ledger.ReserveAndDecrement(context.Background(), products, movements, "tx-1", nil, 99, 1)
	var unavailable *domain.ProductUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, int64(99), unavailable.ProductID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAvailability_DTO(t *testing.T) {
	ledger, _, _ := newLedger(5)

	out, err := ledger.Availability(context.Background(), 1, 3)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.Available)
	assert.Equal(t, int64(5), out.Product.Stock)

	out, err = ledger.Availability(context.Background(), 99, 1)
	require.NoError(t, err)
	assert.Nil(t, out, "producto inexistente: el handler lo traduce a 404")
}
