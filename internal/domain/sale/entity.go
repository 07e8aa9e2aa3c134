package sale

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity  = errors.New("quantidade vendida deve ser maior que zero")
	ErrAlreadyCancelled = errors.New("venda já está cancelada")
)

// Status representa o estado de uma venda
type Status string

const (
	StatusActive    Status = "ativa"     // Venda ativa: baixou estoque e conta para receita
	StatusCancelled Status = "cancelada" // Venda cancelada: estoque já foi restaurado
)

// Sale representa uma venda registrada no sistema. O valor unitário é
// capturado no momento da venda e nunca muda, mesmo que o produto seja
// reajustado depois.
type Sale struct {
	ID         int64           `json:"id"`          // ID da Venda
	ClientID   int64           `json:"client_id"`   // ID do Cliente
	ProductID  int64           `json:"product_id"`  // ID do Produto
	Quantity   int             `json:"quantity"`    // Quantidade Vendida
	UnitValue  decimal.Decimal `json:"unit_value"`  // Valor Unitário no momento da venda
	TotalValue decimal.Decimal `json:"total_value"` // Valor Total (quantidade × valor unitário)
	Status     Status          `json:"status"`      // Status da Venda
	SoldAt     time.Time       `json:"sold_at"`     // Data e Hora da Venda
}

// DetailedSale é uma venda enriquecida com os nomes de cliente e produto
// para listagens e dashboard
type DetailedSale struct {
	Sale
	ClientName  string `json:"client_name"`  // Nome do Cliente
	ProductName string `json:"product_name"` // Nome do Produto
}

// NewSale cria uma nova venda ativa capturando o valor unitário vigente
// do produto
func NewSale(clientID, productID int64, quantity int, unitValue decimal.Decimal) (*Sale, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	return &Sale{
		ClientID:   clientID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitValue:  unitValue,
		TotalValue: unitValue.Mul(decimal.NewFromInt(int64(quantity))),
		Status:     StatusActive,
		SoldAt:     time.Now(),
	}, nil
}

// IsActive verifica se a venda está ativa
func (s *Sale) IsActive() bool {
	return s.Status == StatusActive
}

// Cancel marca a venda como cancelada. A transição é de mão única:
// cancelar uma venda já cancelada é rejeitado, não idempotente.
func (s *Sale) Cancel() error {
	if s.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}

	s.Status = StatusCancelled
	return nil
}
