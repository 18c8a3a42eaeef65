package response

import (
	"time"

	"gestao_cortinas/internal/domain/entities"
)

type NotificationResponse struct {
	ID             string     `json:"id"`
	Tipo           string     `json:"tipo"`
	Titulo         string     `json:"titulo"`
	Mensagem       string     `json:"mensagem"`
	Status         string     `json:"status,omitempty"`
	AmbienteID     string     `json:"ambiente_id,omitempty"`
	AmbienteCodigo string     `json:"ambiente_codigo,omitempty"`
	ObraID         string     `json:"obra_id,omitempty"`
	ObraNome       string     `json:"obra_nome,omitempty"`
	Link           string     `json:"link,omitempty"`
	Lida           bool       `json:"lida"`
	CreatedAt      time.Time  `json:"created_at"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:             n.ID,
		Tipo:           string(n.Tipo),
		Titulo:         n.Titulo,
		Mensagem:       n.Mensagem,
		Status:         string(n.Status),
		AmbienteID:     n.AmbienteID,
		AmbienteCodigo: n.AmbienteCodigo,
		ObraID:         n.ObraID,
		ObraNome:       n.ObraNome,
		Link:           n.Link,
		Lida:           n.IsRead(),
		CreatedAt:      n.CreatedAt,
		ReadAt:         n.ReadAt,
	}
}

func FromNotifications(list []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, FromNotification(n))
	}
	return out
}

type UnreadCountResponse struct {
	NaoLidas int `json:"nao_lidas"`
}

type MarkAllReadResponse struct {
	Atualizadas int `json:"atualizadas"`
}
