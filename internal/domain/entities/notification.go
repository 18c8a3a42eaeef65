package entities

import "time"

type NotificationType string

const (
	NotificationTypeValidacao       NotificationType = "validacao"
	NotificationTypeProducaoCalha   NotificationType = "producao_calha"
	NotificationTypeProducaoCortina NotificationType = "producao_cortina"
	NotificationTypeInstalacao      NotificationType = "instalacao"
	NotificationTypeObraAtribuida   NotificationType = "obra_atribuida"
)

// Notification is an in-app message addressed to one user.
//
// Ambiente and obra fields are a snapshot taken at dispatch time. They are not refreshed
// when the ambiente or obra changes later, so old notifications keep what the recipient saw.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (usuario_id-index): usuario_id, sort created_at
type Notification struct {
	ID             string           `json:"id"`
	UsuarioID      string           `json:"usuario_id"`
	Tipo           NotificationType `json:"tipo"`
	Titulo         string           `json:"titulo"`
	Mensagem       string           `json:"mensagem"`
	Status         AmbienteStatus   `json:"status,omitempty"`
	AmbienteID     string           `json:"ambiente_id,omitempty"`
	AmbienteCodigo string           `json:"ambiente_codigo,omitempty"`
	ObraID         string           `json:"obra_id,omitempty"`
	ObraNome       string           `json:"obra_nome,omitempty"`
	Link           string           `json:"link,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	ReadAt         *time.Time       `json:"read_at,omitempty"`
}

func (n Notification) IsRead() bool {
	return n.ReadAt != nil
}
