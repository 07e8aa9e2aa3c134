package product

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName         = errors.New("nome do produto não pode ser vazio")
	ErrInvalidQuantity   = errors.New("quantidade não pode ser negativa")
	ErrInvalidValue      = errors.New("valor unitário deve ser maior que zero")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)

// Product representa um produto do catálogo com seu estoque atual
type Product struct {
	ID        int64           `json:"id"`         // ID do Produto
	Name      string          `json:"name"`       // Nome do Produto
	Quantity  int             `json:"quantity"`   // Quantidade em Estoque
	Value     decimal.Decimal `json:"value"`      // Valor Unitário
	CreatedAt time.Time       `json:"created_at"` // Data de Criação
	UpdatedAt time.Time       `json:"updated_at"` // Data de Atualização
}

// NewProduct cria um novo produto
func NewProduct(name string, quantity int, value decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	if !value.IsPositive() {
		return nil, ErrInvalidValue
	}

	now := time.Now()
	return &Product{
		Name:      name,
		Quantity:  quantity,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do produto. A quantidade é sobrescrita
// diretamente: este é o caminho de correção manual de estoque, que não
// passa pelo controle de baixa de vendas.
func (p *Product) Update(name string, quantity int, value decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	if quantity < 0 {
		return ErrInvalidQuantity
	}

	if !value.IsPositive() {
		return ErrInvalidValue
	}

	p.Name = name
	p.Quantity = quantity
	p.Value = value
	p.UpdatedAt = time.Now()

	return nil
}

// HasStock verifica se há estoque suficiente para a quantidade pedida
func (p *Product) HasStock(quantity int) bool {
	return p.Quantity >= quantity
}
