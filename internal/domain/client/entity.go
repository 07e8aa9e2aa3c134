package client

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName = errors.New("nome do cliente não pode ser vazio")
)

// Client representa um cliente no sistema
type Client struct {
	ID        int64     `json:"id"`         // ID do Cliente
	Name      string    `json:"name"`       // Nome do Cliente
	CreatedAt time.Time `json:"created_at"` // Data de Criação
	UpdatedAt time.Time `json:"updated_at"` // Data de Atualização
}

// NewClient cria um novo cliente
func NewClient(name string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Client{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do cliente
func (c *Client) Update(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	c.Name = name
	c.UpdatedAt = time.Now()

	return nil
}
