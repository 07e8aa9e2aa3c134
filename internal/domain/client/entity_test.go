package client

import (
	"errors"
	"testing"
)

func TestNewClient(t *testing.T) {
	c, err := NewClient("  Maria  ")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if c.Name != "Maria" {
		t.Errorf("nome = %q, espaços deveriam ser removidos", c.Name)
	}

	for _, name := range []string{"", "   "} {
		if _, err := NewClient(name); !errors.Is(err, ErrEmptyName) {
			t.Errorf("NewClient(%q): erro = %v, esperado ErrEmptyName", name, err)
		}
	}
}

func TestClientUpdate(t *testing.T) {
	c, err := NewClient("Maria")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := c.Update("Maria Souza"); err != nil {
		t.Fatalf("update falhou: %v", err)
	}
	if c.Name != "Maria Souza" {
		t.Errorf("nome = %q após update", c.Name)
	}

	if err := c.Update(" "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("update vazio: erro = %v, esperado ErrEmptyName", err)
	}
}
