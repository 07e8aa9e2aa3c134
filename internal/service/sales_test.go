package service

import (
	"context"
	"testing"
	"time"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/adapter/repository"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/product"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/sale"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	clients  *fakeClientRepo
	products *fakeProductRepo
	sales    *fakeSaleRepo
	catalog  *CatalogService
	sale     *SaleService
}

func newFixture() *fixture {
	clients := newFakeClientRepo()
	products := newFakeProductRepo()
	sales := newFakeSaleRepo(clients, products)
	return &fixture{
		clients:  clients,
		products: products,
		sales:    sales,
		catalog:  NewCatalogService(clients, products, sales),
		sale:     NewSaleService(clients, products, sales),
	}
}

func (f *fixture) seed(t *testing.T, quantity int, value string) (clientID, productID int64) {
	t.Helper()
	ctx := context.Background()

	c, err := f.catalog.CreateClient(ctx, "Maria Silva")
	require.NoError(t, err)

	p, err := f.catalog.CreateProduct(ctx, "Café Torrado", quantity, decimal.RequireFromString(value))
	require.NoError(t, err)

	return c.ID, p.ID
}

func TestSaleCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	clientID, productID := f.seed(t, 10, "2.00")

	d, err := f.sale.Create(ctx, clientID, productID, 4)
	require.NoError(t, err)

	assert.Equal(t, sale.StatusActive, d.Status)
	assert.Equal(t, "Maria Silva", d.ClientName)
	assert.Equal(t, "Café Torrado", d.ProductName)
	assert.True(t, d.UnitValue.Equal(decimal.RequireFromString("2.00")), "valor unitário capturado")
	assert.True(t, d.TotalValue.Equal(decimal.RequireFromString("8.00")), "total = quantidade × valor unitário")

	p, err := f.products.FindByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Quantity, "estoque baixado na criação")
}

func TestSaleCreateInvalidQuantity(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	clientID, productID := f.seed(t, 10, "2.00")

	for _, quantity := range []int{0, -3} {
		_, err := f.sale.Create(ctx, clientID, productID, quantity)
		assert.ErrorIs(t, err, sale.ErrInvalidQuantity)
	}

	p, err := f.products.FindByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Quantity, "venda rejeitada não mexe no estoque")

	total, err := f.sales.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total, "venda rejeitada não é gravada")
}

func TestSaleCreateUnknownReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	clientID, productID := f.seed(t, 10, "2.00")

	_, err := f.sale.Create(ctx, 999, productID, 1)
	assert.ErrorIs(t, err, repository.ErrClientNotFound)

	_, err = f.sale.Create(ctx, clientID, 999, 1)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	total, err := f.sales.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestSaleCreateInsufficientStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	clientID, productID := f.seed(t, 3, "5.00")

	_, err := f.sale.Create(ctx, clientID, productID, 4)
	assert.ErrorIs(t, err, product.ErrInsufficientStock)

	p, err := f.products.FindByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Quantity, "estoque intacto após rejeição")

	// Vender exatamente o estoque disponível é permitido e zera o estoque
	_, err = f.sale.Create(ctx, clientID, productID, 3)
	require.NoError(t, err)

	p, err = f.products.FindByID(ctx, productID)
	require.NoError(t, err)
	assert.Zero(t, p.Quantity)
}

func TestSaleCancelRestoresStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	clientID, productID := f.seed(t, 10, "2.00")

	d, err := f.sale.Create(ctx, clientID, productID, 4)
	require.NoError(t, err)

	cancelled, err := f.sale.Cancel(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.StatusCancelled, cancelled.Status)

	p, err := f.products.FindByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Quantity, "cancelamento devolve exatamente a quantidade vendida")
}

func TestSaleCancelTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	clientID, productID := f.seed(t, 10, "2.00")

	d, err := f.sale.Create(ctx, clientID, productID, 4)
	require.NoError(t, err)

	_, err = f.sale.Cancel(ctx, d.ID)
	require.NoError(t, err)

	_, err = f.sale.Cancel(ctx, d.ID)
	assert.ErrorIs(t, err, sale.ErrAlreadyCancelled)

	p, err := f.products.FindByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Quantity, "segundo cancelamento não devolve estoque de novo")
}

func TestSaleCancelNotFound(t *testing.T) {
	f := newFixture()
	f.seed(t, 10, "2.00")

	_, err := f.sale.Cancel(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrSaleNotFound)
}

func TestSaleDeleteKeepsStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	clientID, productID := f.seed(t, 10, "2.00")

	active, err := f.sale.Create(ctx, clientID, productID, 4)
	require.NoError(t, err)

	// Excluir venda ativa não devolve estoque
	require.NoError(t, f.sale.Delete(ctx, active.ID))

	p, err := f.products.FindByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Quantity)

	_, err = f.sale.Get(ctx, active.ID)
	assert.ErrorIs(t, err, repository.ErrSaleNotFound)

	// Excluir venda cancelada também não mexe no estoque
	other, err := f.sale.Create(ctx, clientID, productID, 2)
	require.NoError(t, err)
	_, err = f.sale.Cancel(ctx, other.ID)
	require.NoError(t, err)

	require.NoError(t, f.sale.Delete(ctx, other.ID))

	p, err = f.products.FindByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Quantity)
}

func TestSaleKeepsCapturedValue(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	clientID, productID := f.seed(t, 10, "2.00")

	d, err := f.sale.Create(ctx, clientID, productID, 4)
	require.NoError(t, err)

	// Reajuste do produto depois da venda
	_, err = f.catalog.UpdateProduct(ctx, productID, "Café Torrado", 6, decimal.RequireFromString("9.99"))
	require.NoError(t, err)

	stored, err := f.sale.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.True(t, stored.UnitValue.Equal(decimal.RequireFromString("2.00")))
	assert.True(t, stored.TotalValue.Equal(decimal.RequireFromString("8.00")))
}

func TestSaleListPeriodFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	clientID, productID := f.seed(t, 10, "2.00")

	_, err := f.sale.Create(ctx, clientID, productID, 1)
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	list, err := f.sale.List(ctx, sale.Filter{Start: &past, End: &future})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = f.sale.List(ctx, sale.Filter{Start: &future})
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = f.sale.List(ctx, sale.Filter{End: &past})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSaleListDetailedFallbackNames(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	clientID, productID := f.seed(t, 10, "2.00")

	d, err := f.sale.Create(ctx, clientID, productID, 1)
	require.NoError(t, err)
	_, err = f.sale.Cancel(ctx, d.ID)
	require.NoError(t, err)

	// Com a venda cancelada o catálogo pode ser removido; a listagem
	// passa a usar os rótulos de ausência
	require.NoError(t, f.catalog.DeleteClient(ctx, clientID))
	require.NoError(t, f.catalog.DeleteProduct(ctx, productID))

	list, err := f.sale.List(ctx, sale.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Cliente não encontrado", list[0].ClientName)
	assert.Equal(t, "Produto não encontrado", list[0].ProductName)
}
