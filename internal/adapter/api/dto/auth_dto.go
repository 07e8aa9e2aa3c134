package dto

import (
	"time"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/user"
)

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta de login com o token de acesso
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserRequest representa a requisição de criação de usuário
type UserRequest struct {
	Name     string    `json:"name" binding:"required"`
	Email    string    `json:"email" binding:"required,email"`
	Password string    `json:"password" binding:"required,min=6"`
	Role     user.Role `json:"role"`
}

// UserResponse representa a resposta de usuário
type UserResponse struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      user.Role   `json:"role"`
	Status    user.Status `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// UserListResponse representa a resposta de listagem de usuários
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

// ToUserResponse converte um usuário do domínio para a resposta da API
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserListResponse converte uma lista de usuários para a resposta da API
func ToUserListResponse(users []*user.User, page, pageSize, total int) UserListResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(u))
	}

	return UserListResponse{
		Users:      responses,
		Pagination: NewPagination(page, pageSize, total),
	}
}
