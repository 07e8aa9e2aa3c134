package sale

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Filter restringe consultas de vendas a um período sobre SoldAt.
// Limites nulos significam "sem limite" daquele lado.
type Filter struct {
	Start *time.Time
	End   *time.Time
}

// RevenueSummary agrega os valores de venda de um período
type RevenueSummary struct {
	Gross  decimal.Decimal `json:"gross"`  // Soma de todas as vendas, inclusive canceladas
	Active decimal.Decimal `json:"active"` // Soma apenas das vendas ativas
	Count  int             `json:"count"`  // Total de vendas no período
}

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Create insere a venda e baixa o estoque do produto na mesma
	// transação: ou ambos acontecem, ou nenhum. Preenche o ID gerado.
	// Retorna ErrInsufficientStock do repositório de produtos quando a
	// baixa deixaria o estoque negativo.
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id int64) (*Sale, error)

	// ListDetailed lista as vendas do período (ID decrescente)
	// enriquecidas com os nomes de cliente e produto
	ListDetailed(ctx context.Context, f Filter) ([]*DetailedSale, error)

	// Cancel grava o status cancelado e devolve ao produto exatamente a
	// quantidade vendida, na mesma transação
	Cancel(ctx context.Context, s *Sale) error

	// Delete remove o registro da venda em qualquer status. Não mexe no
	// estoque.
	Delete(ctx context.Context, id int64) error

	// HasActiveByClient verifica se existe venda ativa referenciando o cliente
	HasActiveByClient(ctx context.Context, clientID int64) (bool, error)

	// HasActiveByProduct verifica se existe venda ativa referenciando o produto
	HasActiveByProduct(ctx context.Context, productID int64) (bool, error)

	// Count conta quantas vendas existem
	Count(ctx context.Context) (int, error)

	// Revenue agrega os valores das vendas do período
	Revenue(ctx context.Context, f Filter) (*RevenueSummary, error)
}
