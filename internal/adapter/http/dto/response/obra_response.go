package response

import (
	"time"

	"gestao_cortinas/internal/domain/entities"
)

type ObraResponse struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Cliente      string    `json:"cliente,omitempty"`
	Endereco     string    `json:"endereco,omitempty"`
	Responsaveis []string  `json:"responsaveis"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    string    `json:"created_by"`
}

func FromObra(o entities.Obra) ObraResponse {
	responsaveis := o.Responsaveis
	if responsaveis == nil {
		responsaveis = []string{}
	}
	return ObraResponse{
		ID:           o.ID,
		Nome:         o.Nome,
		Cliente:      o.Cliente,
		Endereco:     o.Endereco,
		Responsaveis: responsaveis,
		CreatedAt:    o.CreatedAt,
		CreatedBy:    o.CreatedBy,
	}
}

func FromObras(list []entities.Obra) []ObraResponse {
	out := make([]ObraResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromObra(o))
	}
	return out
}
