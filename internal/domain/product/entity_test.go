package product

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("  Açúcar Cristal  ", 0, decimal.RequireFromString("3.20"))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if p.Name != "Açúcar Cristal" {
		t.Errorf("nome = %q, espaços deveriam ser removidos", p.Name)
	}
	if p.Quantity != 0 {
		t.Errorf("quantidade = %d, estoque zero é válido", p.Quantity)
	}
}

func TestNewProductValidation(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		value    string
		want     error
	}{
		{"", 1, "1.00", ErrEmptyName},
		{"   ", 1, "1.00", ErrEmptyName},
		{"Sal", -1, "1.00", ErrInvalidQuantity},
		{"Sal", 1, "0", ErrInvalidValue},
		{"Sal", 1, "-0.01", ErrInvalidValue},
	}

	for _, tc := range cases {
		_, err := NewProduct(tc.name, tc.quantity, decimal.RequireFromString(tc.value))
		if !errors.Is(err, tc.want) {
			t.Errorf("NewProduct(%q, %d, %s): erro = %v, esperado %v", tc.name, tc.quantity, tc.value, err, tc.want)
		}
	}
}

func TestHasStock(t *testing.T) {
	p, err := NewProduct("Leite", 5, decimal.NewFromInt(4))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if !p.HasStock(5) {
		t.Error("vender o estoque exato deveria ser permitido")
	}
	if p.HasStock(6) {
		t.Error("vender acima do estoque não deveria ser permitido")
	}
}
