// Package service concentra as regras de negócio do livro de vendas:
// validação de catálogo, integridade referencial entre vendas e catálogo,
// e o ciclo de vida de vendas com controle de estoque.
package service

import (
	"context"
	"errors"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/client"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/product"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/sale"
	"github.com/shopspring/decimal"
)

var (
	ErrClientHasActiveSales  = errors.New("não é possível excluir um cliente com vendas ativas")
	ErrProductHasActiveSales = errors.New("não é possível excluir um produto com vendas ativas")
)

// CatalogService gerencia clientes e produtos do catálogo, inclusive a
// regra de que registros referenciados por vendas ativas não podem ser
// removidos
type CatalogService struct {
	clientRepo  client.Repository
	productRepo product.Repository
	saleRepo    sale.Repository
}

// NewCatalogService cria uma nova instância de CatalogService
func NewCatalogService(clientRepo client.Repository, productRepo product.Repository, saleRepo sale.Repository) *CatalogService {
	return &CatalogService{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// CreateClient cria um novo cliente
func (s *CatalogService) CreateClient(ctx context.Context, name string) (*client.Client, error) {
	c, err := client.NewClient(name)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// GetClient busca um cliente pelo ID
func (s *CatalogService) GetClient(ctx context.Context, id int64) (*client.Client, error) {
	return s.clientRepo.FindByID(ctx, id)
}

// ListClients lista os clientes com paginação e retorna o total
func (s *CatalogService) ListClients(ctx context.Context, limit, offset int) ([]*client.Client, int, error) {
	clients, err := s.clientRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.clientRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// UpdateClient atualiza o nome de um cliente. Vendas históricas não são
// afetadas.
func (s *CatalogService) UpdateClient(ctx context.Context, id int64, name string) (*client.Client, error) {
	c, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.Update(name); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// DeleteClient remove um cliente, desde que nenhuma venda ativa o
// referencie
func (s *CatalogService) DeleteClient(ctx context.Context, id int64) error {
	hasActive, err := s.saleRepo.HasActiveByClient(ctx, id)
	if err != nil {
		return err
	}
	if hasActive {
		return ErrClientHasActiveSales
	}

	return s.clientRepo.Delete(ctx, id)
}

// CreateProduct cria um novo produto
func (s *CatalogService) CreateProduct(ctx context.Context, name string, quantity int, value decimal.Decimal) (*product.Product, error) {
	p, err := product.NewProduct(name, quantity, value)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// GetProduct busca um produto pelo ID
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*product.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// ListProducts lista os produtos com paginação e retorna o total
func (s *CatalogService) ListProducts(ctx context.Context, limit, offset int) ([]*product.Product, int, error) {
	products, err := s.productRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// UpdateProduct atualiza um produto. A quantidade é sobrescrita
// diretamente (correção manual de estoque) e o valor unitário capturado em
// vendas já registradas permanece intocado.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, name string, quantity int, value decimal.Decimal) (*product.Product, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.Update(name, quantity, value); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// DeleteProduct remove um produto, desde que nenhuma venda ativa o
// referencie
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	hasActive, err := s.saleRepo.HasActiveByProduct(ctx, id)
	if err != nil {
		return err
	}
	if hasActive {
		return ErrProductHasActiveSales
	}

	return s.productRepo.Delete(ctx, id)
}
