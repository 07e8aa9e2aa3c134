package service

import (
	"context"
	"testing"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/sale"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	dashboard := NewDashboardService(f.clients, f.products, f.sales)

	clientID, productID := f.seed(t, 100, "2.00")

	first, err := f.sale.Create(ctx, clientID, productID, 4) // 8.00
	require.NoError(t, err)
	_, err = f.sale.Create(ctx, clientID, productID, 3) // 6.00
	require.NoError(t, err)

	_, err = f.sale.Cancel(ctx, first.ID)
	require.NoError(t, err)

	summary, err := dashboard.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalClients)
	assert.Equal(t, 1, summary.TotalProducts)
	assert.Equal(t, 2, summary.TotalSales)
	assert.True(t, summary.GrossRevenue.Equal(decimal.RequireFromString("14.00")), "receita bruta inclui canceladas")
	assert.True(t, summary.ActiveRevenue.Equal(decimal.RequireFromString("6.00")), "receita ativa ignora canceladas")
	assert.Len(t, summary.RecentSales, 2)
}

func TestDashboardRecentSalesLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	dashboard := NewDashboardService(f.clients, f.products, f.sales)

	clientID, productID := f.seed(t, 100, "1.00")

	var lastID int64
	for i := 0; i < 8; i++ {
		d, err := f.sale.Create(ctx, clientID, productID, 1)
		require.NoError(t, err)
		lastID = d.ID
	}

	summary, err := dashboard.GetSummary(ctx)
	require.NoError(t, err)

	require.Len(t, summary.RecentSales, recentSalesLimit)
	assert.Equal(t, lastID, summary.RecentSales[0].ID, "mais recente primeiro")
}

func TestDashboardRevenueEmpty(t *testing.T) {
	f := newFixture()
	dashboard := NewDashboardService(f.clients, f.products, f.sales)

	revenue, err := dashboard.GetRevenue(context.Background(), sale.Filter{})
	require.NoError(t, err)

	assert.True(t, revenue.Gross.IsZero())
	assert.True(t, revenue.Active.IsZero())
	assert.Zero(t, revenue.Count)
}
