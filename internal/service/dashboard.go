package service

import (
	"context"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/client"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/product"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// recentSalesLimit limita quantas vendas recentes entram no resumo
const recentSalesLimit = 5

// Summary agrega os números exibidos no dashboard
type Summary struct {
	TotalClients  int                  `json:"total_clients"`
	TotalProducts int                  `json:"total_products"`
	TotalSales    int                  `json:"total_sales"`
	GrossRevenue  decimal.Decimal      `json:"gross_revenue"`  // Todas as vendas, inclusive canceladas
	ActiveRevenue decimal.Decimal      `json:"active_revenue"` // Apenas vendas ativas
	RecentSales   []*sale.DetailedSale `json:"recent_sales"`
}

// DashboardService calcula os agregados consumidos pelo dashboard
type DashboardService struct {
	clientRepo  client.Repository
	productRepo product.Repository
	saleRepo    sale.Repository
}

// NewDashboardService cria uma nova instância de DashboardService
func NewDashboardService(clientRepo client.Repository, productRepo product.Repository, saleRepo sale.Repository) *DashboardService {
	return &DashboardService{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// GetSummary monta o resumo geral do sistema
func (s *DashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	totalClients, err := s.clientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalProducts, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.saleRepo.Revenue(ctx, sale.Filter{})
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListDetailed(ctx, sale.Filter{})
	if err != nil {
		return nil, err
	}

	recent := sales
	if len(recent) > recentSalesLimit {
		recent = recent[:recentSalesLimit]
	}

	return &Summary{
		TotalClients:  totalClients,
		TotalProducts: totalProducts,
		TotalSales:    revenue.Count,
		GrossRevenue:  revenue.Gross,
		ActiveRevenue: revenue.Active,
		RecentSales:   recent,
	}, nil
}

// GetRevenue calcula a receita do período informado
func (s *DashboardService) GetRevenue(ctx context.Context, f sale.Filter) (*sale.RevenueSummary, error) {
	return s.saleRepo.Revenue(ctx, f)
}
