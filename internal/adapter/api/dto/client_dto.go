package dto

import (
	"time"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/client"
)

// ClientRequest representa a requisição de criação/atualização de cliente
type ClientRequest struct {
	Name string `json:"name" binding:"required"`
}

// ClientResponse representa a resposta de cliente
type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListResponse representa a resposta de listagem de clientes
type ClientListResponse struct {
	Clients    []ClientResponse `json:"clients"`
	Pagination Pagination       `json:"pagination"`
}

// ToClientResponse converte um cliente do domínio para a resposta da API
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToClientListResponse converte uma lista de clientes para a resposta da API
func ToClientListResponse(clients []*client.Client, page, pageSize, total int) ClientListResponse {
	responses := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, ToClientResponse(c))
	}

	return ClientListResponse{
		Clients:    responses,
		Pagination: NewPagination(page, pageSize, total),
	}
}
