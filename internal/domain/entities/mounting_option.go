package entities

import "time"

// MountingOption is the user-editable catalog entry around one of the fixed mounting
// archetypes. Ambientes record the option name as free text, so deleting an option does
// not affect them.
//
// Storage model (DynamoDB):
//   - PK: id
type MountingOption struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Descricao string    `json:"descricao,omitempty"`
	TipoBase  string    `json:"tipo_base"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}
