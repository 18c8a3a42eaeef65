package interfaces

import (
	"context"

	"gestao_cortinas/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for the user directory.
//
// ListByRoles and GetByIDs return inactive users too; callers filter on Ativo.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	ListByRoles(ctx context.Context, roles []entities.Role) ([]entities.User, error)
	SetAtivo(ctx context.Context, id string, ativo bool) (entities.User, error)
}
