package entities

import "time"

// Obra is the construction project/site that groups ambientes.
//
// Storage model (DynamoDB):
//   - PK: id
type Obra struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Cliente      string    `json:"cliente"`
	Endereco     string    `json:"endereco"`
	Responsaveis []string  `json:"responsaveis"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    string    `json:"created_by"`
}

// HasResponsavel reports whether userID is already assigned to the obra.
func (o Obra) HasResponsavel(userID string) bool {
	for _, id := range o.Responsaveis {
		if id == userID {
			return true
		}
	}
	return false
}
