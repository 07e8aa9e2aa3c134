package sale

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewSale(t *testing.T) {
	s, err := NewSale(1, 2, 4, decimal.RequireFromString("2.00"))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if s.Status != StatusActive {
		t.Errorf("status = %q, esperado %q", s.Status, StatusActive)
	}
	if !s.TotalValue.Equal(decimal.RequireFromString("8.00")) {
		t.Errorf("total = %s, esperado 8.00", s.TotalValue)
	}
	if !s.IsActive() {
		t.Error("venda recém-criada deveria estar ativa")
	}
	if s.SoldAt.IsZero() {
		t.Error("SoldAt não foi preenchido")
	}
}

func TestNewSaleInvalidQuantity(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		if _, err := NewSale(1, 2, quantity, decimal.NewFromInt(1)); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantidade %d: erro = %v, esperado ErrInvalidQuantity", quantity, err)
		}
	}
}

func TestCancel(t *testing.T) {
	s, err := NewSale(1, 2, 1, decimal.NewFromInt(1))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := s.Cancel(); err != nil {
		t.Fatalf("primeiro cancelamento falhou: %v", err)
	}
	if s.Status != StatusCancelled {
		t.Errorf("status = %q, esperado %q", s.Status, StatusCancelled)
	}

	if err := s.Cancel(); !errors.Is(err, ErrAlreadyCancelled) {
		t.Errorf("segundo cancelamento: erro = %v, esperado ErrAlreadyCancelled", err)
	}
}
