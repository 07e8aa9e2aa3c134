package client

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente e preenche o ID gerado
	Create(ctx context.Context, c *Client) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id int64) (*Client, error)

	// List lista os clientes com paginação, ordenados por nome
	List(ctx context.Context, limit, offset int) ([]*Client, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Client) error

	// Delete remove um cliente
	Delete(ctx context.Context, id int64) error

	// Count conta quantos clientes existem
	Count(ctx context.Context) (int, error)
}
