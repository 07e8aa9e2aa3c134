package dto

import (
	"time"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductRequest representa a requisição de criação/atualização de produto.
// A quantidade informada sobrescreve o estoque atual (correção manual).
type ProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Quantity int             `json:"quantity"`
	Value    decimal.Decimal `json:"value" binding:"required"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse representa a resposta de listagem de produtos
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination Pagination        `json:"pagination"`
}

// ToProductResponse converte um produto do domínio para a resposta da API
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Quantity:  p.Quantity,
		Value:     p.Value,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos para a resposta da API
func ToProductListResponse(products []*product.Product, page, pageSize, total int) ProductListResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}

	return ProductListResponse{
		Products:   responses,
		Pagination: NewPagination(page, pageSize, total),
	}
}
