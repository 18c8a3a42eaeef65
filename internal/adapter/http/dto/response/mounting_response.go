package response

import (
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/usecase"
)

type MountingOptionResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Descricao string    `json:"descricao,omitempty"`
	TipoBase  string    `json:"tipo_base"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}

func FromMountingOption(o entities.MountingOption) MountingOptionResponse {
	return MountingOptionResponse{
		ID:        o.ID,
		Nome:      o.Nome,
		Descricao: o.Descricao,
		TipoBase:  o.TipoBase,
		CreatedAt: o.CreatedAt,
		CreatedBy: o.CreatedBy,
	}
}

func FromMountingOptions(list []entities.MountingOption) []MountingOptionResponse {
	out := make([]MountingOptionResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromMountingOption(o))
	}
	return out
}

type ArchetypeResponse struct {
	ID         string `json:"id"`
	Nome       string `json:"nome"`
	Descricao  string `json:"descricao"`
	TotalPecas int    `json:"total_pecas"`
}

func FromArchetypes(list []usecase.ArchetypeSummary) []ArchetypeResponse {
	out := make([]ArchetypeResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ArchetypeResponse{
			ID:         a.ID,
			Nome:       a.Nome,
			Descricao:  a.Descricao,
			TotalPecas: a.TotalPecas,
		})
	}
	return out
}
