package service

import (
	"context"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/client"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/product"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/sale"
)

// SaleService implementa o ciclo de vida de vendas: criação com baixa de
// estoque, cancelamento com devolução e exclusão definitiva
type SaleService struct {
	clientRepo  client.Repository
	productRepo product.Repository
	saleRepo    sale.Repository
}

// NewSaleService cria uma nova instância de SaleService
func NewSaleService(clientRepo client.Repository, productRepo product.Repository, saleRepo sale.Repository) *SaleService {
	return &SaleService{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// Create registra uma venda ativa. O valor unitário do produto é capturado
// no momento da venda; a inserção da venda e a baixa do estoque acontecem
// na mesma transação do repositório, então estoque insuficiente impede a
// gravação da venda.
func (s *SaleService) Create(ctx context.Context, clientID, productID int64, quantity int) (*sale.DetailedSale, error) {
	if quantity <= 0 {
		return nil, sale.ErrInvalidQuantity
	}

	c, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Pré-checagem para responder rápido; a garantia real contra
	// oversell é o UPDATE condicional dentro da transação de criação
	if !p.HasStock(quantity) {
		return nil, product.ErrInsufficientStock
	}

	v, err := sale.NewSale(clientID, productID, quantity, p.Value)
	if err != nil {
		return nil, err
	}

	if err := s.saleRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	return &sale.DetailedSale{
		Sale:        *v,
		ClientName:  c.Name,
		ProductName: p.Name,
	}, nil
}

// Get busca uma venda pelo ID
func (s *SaleService) Get(ctx context.Context, id int64) (*sale.Sale, error) {
	return s.saleRepo.FindByID(ctx, id)
}

// List lista as vendas do período enriquecidas com nomes de cliente e
// produto, da mais recente para a mais antiga
func (s *SaleService) List(ctx context.Context, f sale.Filter) ([]*sale.DetailedSale, error) {
	return s.saleRepo.ListDetailed(ctx, f)
}

// Cancel cancela uma venda ativa devolvendo ao produto exatamente a
// quantidade vendida. Cancelar uma venda já cancelada é rejeitado.
func (s *SaleService) Cancel(ctx context.Context, id int64) (*sale.Sale, error) {
	v, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := v.Cancel(); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Cancel(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

// Delete remove a venda definitivamente, em qualquer status. O estoque não
// é restaurado: excluir uma venda ativa apaga a trilha sem reconciliar o
// estoque, diferente de Cancel.
func (s *SaleService) Delete(ctx context.Context, id int64) error {
	return s.saleRepo.Delete(ctx, id)
}
