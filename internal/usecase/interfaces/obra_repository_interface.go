package interfaces

import (
	"context"

	"gestao_cortinas/internal/domain/entities"
)

// IObraRepository abstracts DynamoDB persistence for Obra.
type IObraRepository interface {
	Create(ctx context.Context, o entities.Obra) (entities.Obra, error)
	GetByID(ctx context.Context, id string) (entities.Obra, error)
	List(ctx context.Context) ([]entities.Obra, error)
	SetResponsaveis(ctx context.Context, id string, responsaveis []string) (entities.Obra, error)
}
