package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/sale"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrSaleNotFound = errors.New("venda não encontrada")
)

// Rótulos usados quando a venda referencia um cliente ou produto que já
// foi removido do catálogo
const (
	missingClientLabel  = "Cliente não encontrado"
	missingProductLabel = "Produto não encontrado"
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

// transaction executa fn dentro de uma transação com rollback em caso de erro
func (r *SaleRepository) transaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Printf("erro ao fazer rollback: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}

// Create implementa sale.Repository.Create. A inserção da venda e a baixa
// do estoque acontecem na mesma transação: se o estoque for insuficiente,
// a venda não é gravada.
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	return r.transaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO sales (client_id, product_id, quantity, unit_value, total_value, status, sold_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			s.ClientID, s.ProductID, s.Quantity, s.UnitValue, s.TotalValue, s.Status, s.SoldAt).Scan(&s.ID)
		if err != nil {
			return fmt.Errorf("erro ao criar venda: %w", err)
		}

		return adjustStock(ctx, tx, s.ProductID, -s.Quantity)
	})
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id int64) (*sale.Sale, error) {
	var s sale.Sale

	err := r.db.QueryRow(ctx,
		`SELECT id, client_id, product_id, quantity, unit_value, total_value, status, sold_at
		FROM sales WHERE id = $1`,
		id).Scan(&s.ID, &s.ClientID, &s.ProductID, &s.Quantity, &s.UnitValue,
		&s.TotalValue, &s.Status, &s.SoldAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	return &s, nil
}

// ListDetailed implementa sale.Repository.ListDetailed. Clientes e
// produtos já removidos aparecem com rótulos de ausência, preservando a
// listagem do histórico.
func (r *SaleRepository) ListDetailed(ctx context.Context, f sale.Filter) ([]*sale.DetailedSale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.client_id, s.product_id, s.quantity, s.unit_value,
			s.total_value, s.status, s.sold_at,
			COALESCE(c.name, $3), COALESCE(p.name, $4)
		FROM sales s
		LEFT JOIN clients c ON c.id = s.client_id
		LEFT JOIN products p ON p.id = s.product_id
		WHERE ($1::timestamptz IS NULL OR s.sold_at >= $1)
		  AND ($2::timestamptz IS NULL OR s.sold_at <= $2)
		ORDER BY s.id DESC`,
		f.Start, f.End, missingClientLabel, missingProductLabel)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.DetailedSale, 0)
	for rows.Next() {
		var d sale.DetailedSale
		if err := rows.Scan(&d.ID, &d.ClientID, &d.ProductID, &d.Quantity, &d.UnitValue,
			&d.TotalValue, &d.Status, &d.SoldAt, &d.ClientName, &d.ProductName); err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}

	return sales, nil
}

// Cancel implementa sale.Repository.Cancel. A troca de status e a
// devolução do estoque acontecem na mesma transação; a cláusula de status
// garante no banco que a transição é de mão única.
func (r *SaleRepository) Cancel(ctx context.Context, s *sale.Sale) error {
	return r.transaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE sales SET status = $1 WHERE id = $2 AND status = $3`,
			sale.StatusCancelled, s.ID, sale.StatusActive)
		if err != nil {
			return fmt.Errorf("erro ao cancelar venda: %w", err)
		}

		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sales WHERE id = $1)`, s.ID).Scan(&exists); err != nil {
				return fmt.Errorf("erro ao verificar venda: %w", err)
			}
			if !exists {
				return ErrSaleNotFound
			}
			return sale.ErrAlreadyCancelled
		}

		// Devolve exatamente a quantidade vendida, não o nível atual
		return adjustStock(ctx, tx, s.ProductID, s.Quantity)
	})
}

// Delete implementa sale.Repository.Delete. Remove o registro em qualquer
// status e nunca mexe no estoque.
func (r *SaleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover venda: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSaleNotFound
	}

	return nil
}

// HasActiveByClient implementa sale.Repository.HasActiveByClient
func (r *SaleRepository) HasActiveByClient(ctx context.Context, clientID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sales WHERE client_id = $1 AND status = $2)`,
		clientID, sale.StatusActive).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar vendas do cliente: %w", err)
	}
	return exists, nil
}

// HasActiveByProduct implementa sale.Repository.HasActiveByProduct
func (r *SaleRepository) HasActiveByProduct(ctx context.Context, productID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sales WHERE product_id = $1 AND status = $2)`,
		productID, sale.StatusActive).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar vendas do produto: %w", err)
	}
	return exists, nil
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}
	return total, nil
}

// Revenue implementa sale.Repository.Revenue
func (r *SaleRepository) Revenue(ctx context.Context, f sale.Filter) (*sale.RevenueSummary, error) {
	var summary sale.RevenueSummary

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_value), 0),
			COALESCE(SUM(total_value) FILTER (WHERE status = $3), 0),
			COUNT(*)
		FROM sales
		WHERE ($1::timestamptz IS NULL OR sold_at >= $1)
		  AND ($2::timestamptz IS NULL OR sold_at <= $2)`,
		f.Start, f.End, sale.StatusActive).Scan(&summary.Gross, &summary.Active, &summary.Count)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular receita: %w", err)
	}

	return &summary, nil
}
