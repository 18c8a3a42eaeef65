package request

import (
	"strings"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/usecase"
)

type CreateUserRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

func (r CreateUserRequest) ToInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Nome:  strings.TrimSpace(r.Nome),
		Email: strings.TrimSpace(r.Email),
		Role:  entities.Role(strings.TrimSpace(r.Role)),
	}
}

type SetAtivoRequest struct {
	Ativo *bool `json:"ativo" binding:"required"`
}
