package service

import (
	"context"
	"testing"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/adapter/repository"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/client"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	for _, name := range []string{"", "   "} {
		_, err := f.catalog.CreateClient(ctx, name)
		assert.ErrorIs(t, err, client.ErrEmptyName)
	}

	total, err := f.clients.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total, "cliente rejeitado não é gravado")
}

func TestCreateClientTrimsName(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	c, err := f.catalog.CreateClient(ctx, "  João Pedro  ")
	require.NoError(t, err)
	assert.Equal(t, "João Pedro", c.Name)
	assert.NotZero(t, c.ID)
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	cases := []struct {
		name     string
		quantity int
		value    string
		want     error
	}{
		{"", 5, "1.00", product.ErrEmptyName},
		{"Arroz", -1, "1.00", product.ErrInvalidQuantity},
		{"Arroz", 5, "0", product.ErrInvalidValue},
		{"Arroz", 5, "-2.50", product.ErrInvalidValue},
	}

	for _, tc := range cases {
		_, err := f.catalog.CreateProduct(ctx, tc.name, tc.quantity, decimal.RequireFromString(tc.value))
		assert.ErrorIs(t, err, tc.want)
	}

	// Quantidade zero é válida: produto pode nascer sem estoque
	p, err := f.catalog.CreateProduct(ctx, "Arroz", 0, decimal.RequireFromString("4.50"))
	require.NoError(t, err)
	assert.Zero(t, p.Quantity)

	total, err := f.products.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestUpdateClient(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	c, err := f.catalog.CreateClient(ctx, "Ana")
	require.NoError(t, err)

	updated, err := f.catalog.UpdateClient(ctx, c.ID, "Ana Clara")
	require.NoError(t, err)
	assert.Equal(t, "Ana Clara", updated.Name)

	_, err = f.catalog.UpdateClient(ctx, c.ID, "  ")
	assert.ErrorIs(t, err, client.ErrEmptyName)

	_, err = f.catalog.UpdateClient(ctx, 999, "Qualquer")
	assert.ErrorIs(t, err, repository.ErrClientNotFound)
}

func TestUpdateProductOverwritesStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	p, err := f.catalog.CreateProduct(ctx, "Feijão", 10, decimal.RequireFromString("7.00"))
	require.NoError(t, err)

	// Correção manual de estoque sobrescreve a quantidade
	updated, err := f.catalog.UpdateProduct(ctx, p.ID, "Feijão Preto", 25, decimal.RequireFromString("7.50"))
	require.NoError(t, err)
	assert.Equal(t, 25, updated.Quantity)
	assert.True(t, updated.Value.Equal(decimal.RequireFromString("7.50")))
}

func TestDeleteClientWithActiveSales(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	clientID, productID := f.seed(t, 10, "2.00")

	d, err := f.sale.Create(ctx, clientID, productID, 1)
	require.NoError(t, err)

	err = f.catalog.DeleteClient(ctx, clientID)
	assert.ErrorIs(t, err, ErrClientHasActiveSales)

	_, err = f.catalog.GetClient(ctx, clientID)
	require.NoError(t, err, "cliente permanece após exclusão rejeitada")

	// Depois de cancelar a venda a exclusão passa
	_, err = f.sale.Cancel(ctx, d.ID)
	require.NoError(t, err)

	require.NoError(t, f.catalog.DeleteClient(ctx, clientID))
	_, err = f.catalog.GetClient(ctx, clientID)
	assert.ErrorIs(t, err, repository.ErrClientNotFound)
}

func TestDeleteProductWithActiveSales(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	clientID, productID := f.seed(t, 10, "2.00")

	d, err := f.sale.Create(ctx, clientID, productID, 1)
	require.NoError(t, err)

	err = f.catalog.DeleteProduct(ctx, productID)
	assert.ErrorIs(t, err, ErrProductHasActiveSales)

	// Excluir a própria venda também libera o produto
	require.NoError(t, f.sale.Delete(ctx, d.ID))
	require.NoError(t, f.catalog.DeleteProduct(ctx, productID))

	_, err = f.catalog.GetProduct(ctx, productID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestListClientsPagination(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	for _, name := range []string{"Carlos", "Ana", "Bruno"} {
		_, err := f.catalog.CreateClient(ctx, name)
		require.NoError(t, err)
	}

	page, total, err := f.catalog.ListClients(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "Ana", page[0].Name)
	assert.Equal(t, "Bruno", page[1].Name)

	page, _, err = f.catalog.ListClients(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Carlos", page[0].Name)
}
