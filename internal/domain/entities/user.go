package entities

import "time"

type Role string

const (
	RoleGerente         Role = "gerente"
	RoleMedidor         Role = "medidor"
	RoleProducaoCalha   Role = "producao_calha"
	RoleProducaoCortina Role = "producao_cortina"
	RoleEstoque         Role = "estoque"
	RoleExpedicao       Role = "expedicao"
	RoleInstalador      Role = "instalador"
)

var AllRoles = []Role{
	RoleGerente,
	RoleMedidor,
	RoleProducaoCalha,
	RoleProducaoCortina,
	RoleEstoque,
	RoleExpedicao,
	RoleInstalador,
}

func (r Role) IsValid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// IsManager reports whether the role carries the elevated transition table.
func (r Role) IsManager() bool {
	return r == RoleGerente
}

// User is a member of the operations team. Credentials live in the identity provider;
// this service only keeps the directory entry used for assignment and notifications.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (role-index): role
type User struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   string
	Nome string
	Role Role
}
