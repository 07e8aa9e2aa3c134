package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrProductNotFound = errors.New("produto não encontrado")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO products (name, quantity, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		p.Name, p.Quantity, p.Value, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)

	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	var p product.Product

	err := r.db.QueryRow(ctx,
		`SELECT id, name, quantity, value, created_at, updated_at
		FROM products WHERE id = $1`,
		id).Scan(&p.ID, &p.Name, &p.Quantity, &p.Value, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return &p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, quantity, value, created_at, updated_at
		FROM products
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.Value, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}

	return products, nil
}

// Update implementa product.Repository.Update. A quantidade é sobrescrita
// tal como veio: é o caminho de correção manual de estoque.
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET name = $1, quantity = $2, value = $3, updated_at = $4
		WHERE id = $5`,
		p.Name, p.Quantity, p.Value, p.UpdatedAt, p.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return total, nil
}

// AdjustStock implementa product.Repository.AdjustStock. A verificação e o
// ajuste acontecem em um único UPDATE condicional, de modo que duas vendas
// concorrentes não conseguem ambas baixar o mesmo estoque.
func (r *ProductRepository) AdjustStock(ctx context.Context, id int64, delta int) error {
	return adjustStock(ctx, r.db, id, delta)
}

// stockQuerier é o subconjunto de *pgxpool.Pool e pgx.Tx usado pelo ajuste
// de estoque, para que a mesma rotina sirva dentro e fora de transação
type stockQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func adjustStock(ctx context.Context, db stockQuerier, id int64, delta int) error {
	tag, err := db.Exec(ctx,
		`UPDATE products
		SET quantity = quantity + $1, updated_at = NOW()
		WHERE id = $2 AND quantity + $1 >= 0`,
		delta, id)
	if err != nil {
		return fmt.Errorf("erro ao ajustar estoque: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// Distinguir produto inexistente de estoque insuficiente
		var exists bool
		if err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("erro ao verificar produto: %w", err)
		}
		if !exists {
			return ErrProductNotFound
		}
		return product.ErrInsufficientStock
	}

	return nil
}
