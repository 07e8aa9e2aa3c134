package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto e preenche o ID gerado
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// List lista os produtos com paginação, ordenados por nome
	List(ctx context.Context, limit, offset int) ([]*Product, error)

	// Update atualiza os dados de um produto existente, inclusive a
	// quantidade em estoque (sobrescrita manual)
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id int64) error

	// Count conta quantos produtos existem
	Count(ctx context.Context) (int, error)

	// AdjustStock aplica um delta à quantidade em estoque de forma
	// atômica. É o único caminho sancionado de mutação de estoque fora
	// da sobrescrita manual de Update. Retorna ErrInsufficientStock se
	// o resultado ficaria negativo.
	AdjustStock(ctx context.Context, id int64, delta int) error
}
