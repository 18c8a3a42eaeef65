package request

import (
	"strings"

	"gestao_cortinas/internal/usecase"
)

type CreateMountingOptionRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Descricao string `json:"descricao"`
	TipoBase  string `json:"tipo_base" binding:"required"`
}

func (r CreateMountingOptionRequest) ToInput() usecase.CreateMountingOptionInput {
	return usecase.CreateMountingOptionInput{
		Nome:      strings.TrimSpace(r.Nome),
		Descricao: strings.TrimSpace(r.Descricao),
		TipoBase:  strings.TrimSpace(r.TipoBase),
	}
}

// PiecesQuery is bound from the query string of the pieces endpoint.
type PiecesQuery struct {
	Largura  float64 `form:"largura" binding:"required"`
	Desconto float64 `form:"desconto"`
}
