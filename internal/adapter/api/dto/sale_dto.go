package dto

import (
	"time"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// SaleRequest representa a requisição de criação de venda
type SaleRequest struct {
	ClientID  int64 `json:"client_id" binding:"required"`
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID         int64           `json:"id"`
	ClientID   int64           `json:"client_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitValue  decimal.Decimal `json:"unit_value"`
	TotalValue decimal.Decimal `json:"total_value"`
	Status     sale.Status     `json:"status"`
	SoldAt     time.Time       `json:"sold_at"`
}

// DetailedSaleResponse representa a resposta de venda enriquecida com os
// nomes de cliente e produto
type DetailedSaleResponse struct {
	SaleResponse
	ClientName  string `json:"client_name"`
	ProductName string `json:"product_name"`
}

// SaleListResponse representa a resposta de listagem de vendas
type SaleListResponse struct {
	Sales []DetailedSaleResponse `json:"sales"`
	Total int                    `json:"total"`
}

// ToSaleResponse converte uma venda do domínio para a resposta da API
func ToSaleResponse(s *sale.Sale) SaleResponse {
	return SaleResponse{
		ID:         s.ID,
		ClientID:   s.ClientID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		UnitValue:  s.UnitValue,
		TotalValue: s.TotalValue,
		Status:     s.Status,
		SoldAt:     s.SoldAt,
	}
}

// ToDetailedSaleResponse converte uma venda detalhada para a resposta da API
func ToDetailedSaleResponse(d *sale.DetailedSale) DetailedSaleResponse {
	return DetailedSaleResponse{
		SaleResponse: ToSaleResponse(&d.Sale),
		ClientName:   d.ClientName,
		ProductName:  d.ProductName,
	}
}

// ToSaleListResponse converte uma lista de vendas detalhadas para a
// resposta da API
func ToSaleListResponse(sales []*sale.DetailedSale) SaleListResponse {
	responses := make([]DetailedSaleResponse, 0, len(sales))
	for _, d := range sales {
		responses = append(responses, ToDetailedSaleResponse(d))
	}

	return SaleListResponse{
		Sales: responses,
		Total: len(responses),
	}
}
