package response

import (
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/domain/mounting"
)

type StatusResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func FromStatus(s entities.AmbienteStatus) StatusResponse {
	return StatusResponse{Value: string(s), Label: s.Label()}
}

func FromStatuses(statuses []entities.AmbienteStatus) []StatusResponse {
	out := make([]StatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, FromStatus(s))
	}
	return out
}

type AmbienteLogResponse struct {
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	Observacao  string    `json:"observacao,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	UsuarioID   string    `json:"usuario_id"`
	UsuarioNome string    `json:"usuario_nome,omitempty"`
}

type AmbienteResponse struct {
	ID           string                `json:"id"`
	ObraID       string                `json:"obra_id"`
	Codigo       string                `json:"codigo"`
	Prefixo      string                `json:"prefixo"`
	Sala         string                `json:"sala"`
	Sequencia    int                   `json:"sequencia"`
	Medidas      entities.Medidas      `json:"medidas"`
	Variaveis    entities.Variaveis    `json:"variaveis"`
	Calculado    entities.Calculado    `json:"calculado"`
	Status       string                `json:"status"`
	StatusLabel  string                `json:"status_label"`
	Workflow     entities.Workflow     `json:"workflow"`
	Logs         []AmbienteLogResponse `json:"logs"`
	Responsaveis entities.Responsaveis `json:"responsaveis"`
	CreatedBy    string                `json:"created_by"`
	UpdatedBy    string                `json:"updated_by"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Version      int64                 `json:"version"`
}

func FromAmbiente(a entities.Ambiente) AmbienteResponse {
	status := a.Status.OrDefault()
	logs := make([]AmbienteLogResponse, 0, len(a.Logs))
	for _, l := range a.Logs {
		logs = append(logs, AmbienteLogResponse{
			Status:      string(l.Status),
			StatusLabel: l.Status.Label(),
			Observacao:  l.Observacao,
			Timestamp:   l.Timestamp,
			UsuarioID:   l.UsuarioID,
			UsuarioNome: l.UsuarioNome,
		})
	}
	return AmbienteResponse{
		ID:           a.ID,
		ObraID:       a.ObraID,
		Codigo:       a.Codigo,
		Prefixo:      a.Prefixo,
		Sala:         a.Sala,
		Sequencia:    a.Sequencia,
		Medidas:      a.Medidas,
		Variaveis:    a.Variaveis,
		Calculado:    a.Calculado,
		Status:       string(status),
		StatusLabel:  status.Label(),
		Workflow:     a.Workflow,
		Logs:         logs,
		Responsaveis: a.Responsaveis,
		CreatedBy:    a.CreatedBy,
		UpdatedBy:    a.UpdatedBy,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		Version:      a.Version,
	}
}

func FromAmbientes(list []entities.Ambiente) []AmbienteResponse {
	out := make([]AmbienteResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAmbiente(a))
	}
	return out
}

type TransitionsResponse struct {
	AmbienteID string           `json:"ambiente_id"`
	Atual      StatusResponse   `json:"atual"`
	Permitidos []StatusResponse `json:"permitidos"`
}

func FromTransitions(a entities.Ambiente, allowed []entities.AmbienteStatus) TransitionsResponse {
	return TransitionsResponse{
		AmbienteID: a.ID,
		Atual:      FromStatus(a.Status.OrDefault()),
		Permitidos: FromStatuses(allowed),
	}
}

type PiecesResponse struct {
	Tipo  string           `json:"tipo,omitempty"`
	Pecas []mounting.Piece `json:"pecas"`
	Total int              `json:"total"`
}

func FromPieces(tipo string, pieces []mounting.Piece) PiecesResponse {
	if pieces == nil {
		pieces = []mounting.Piece{}
	}
	return PiecesResponse{Tipo: tipo, Pecas: pieces, Total: len(pieces)}
}
