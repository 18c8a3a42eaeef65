package response

import (
	"time"

	"gestao_cortinas/internal/domain/entities"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		Role:      string(u.Role),
		Ativo:     u.Ativo,
		CreatedAt: u.CreatedAt,
	}
}

func FromUsers(list []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, FromUser(u))
	}
	return out
}
