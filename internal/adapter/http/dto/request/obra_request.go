package request

import (
	"strings"

	"gestao_cortinas/internal/usecase"
)

type CreateObraRequest struct {
	Nome         string   `json:"nome" binding:"required"`
	Cliente      string   `json:"cliente"`
	Endereco     string   `json:"endereco"`
	Responsaveis []string `json:"responsaveis"`
}

func (r CreateObraRequest) ToInput() usecase.CreateObraInput {
	return usecase.CreateObraInput{
		Nome:         strings.TrimSpace(r.Nome),
		Cliente:      strings.TrimSpace(r.Cliente),
		Endereco:     strings.TrimSpace(r.Endereco),
		Responsaveis: trimIDs(r.Responsaveis),
	}
}

type AddResponsaveisRequest struct {
	UsuarioIDs []string `json:"usuario_ids" binding:"required,min=1"`
}

func (r AddResponsaveisRequest) IDs() []string {
	return trimIDs(r.UsuarioIDs)
}

func trimIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if v := strings.TrimSpace(id); v != "" {
			out = append(out, v)
		}
	}
	return out
}
