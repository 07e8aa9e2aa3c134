package dto

import (
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/sale"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/service"
	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse representa o resumo exibido no dashboard
type DashboardSummaryResponse struct {
	TotalClients  int                    `json:"total_clients"`
	TotalProducts int                    `json:"total_products"`
	TotalSales    int                    `json:"total_sales"`
	GrossRevenue  decimal.Decimal        `json:"gross_revenue"`
	ActiveRevenue decimal.Decimal        `json:"active_revenue"`
	RecentSales   []DetailedSaleResponse `json:"recent_sales"`
}

// RevenueResponse representa a receita agregada de um período
type RevenueResponse struct {
	Gross  decimal.Decimal `json:"gross"`
	Active decimal.Decimal `json:"active"`
	Count  int             `json:"count"`
}

// ToDashboardSummaryResponse converte o resumo do serviço para a resposta
// da API
func ToDashboardSummaryResponse(s *service.Summary) DashboardSummaryResponse {
	recent := make([]DetailedSaleResponse, 0, len(s.RecentSales))
	for _, d := range s.RecentSales {
		recent = append(recent, ToDetailedSaleResponse(d))
	}

	return DashboardSummaryResponse{
		TotalClients:  s.TotalClients,
		TotalProducts: s.TotalProducts,
		TotalSales:    s.TotalSales,
		GrossRevenue:  s.GrossRevenue,
		ActiveRevenue: s.ActiveRevenue,
		RecentSales:   recent,
	}
}

// ToRevenueResponse converte o agregado de receita para a resposta da API
func ToRevenueResponse(r *sale.RevenueSummary) RevenueResponse {
	return RevenueResponse{
		Gross:  r.Gross,
		Active: r.Active,
		Count:  r.Count,
	}
}
