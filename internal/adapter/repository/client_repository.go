package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/client"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrClientNotFound = errors.New("cliente não encontrado")
)

// ClientRepository implementa a interface client.Repository
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{
		db: db,
	}
}

// Create implementa client.Repository.Create
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO clients (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id`,
		c.Name, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)

	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*client.Client, error) {
	var c client.Client

	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at
		FROM clients WHERE id = $1`,
		id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &c, nil
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context, limit, offset int) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, created_at, updated_at
		FROM clients
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	clients := make([]*client.Client, 0)
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		clients = append(clients, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}

	return clients, nil
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE clients SET name = $1, updated_at = $2 WHERE id = $3`,
		c.Name, c.UpdatedAt, c.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Delete implementa client.Repository.Delete
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover cliente: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Count implementa client.Repository.Count
func (r *ClientRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}
	return total, nil
}
