package interfaces

import (
	"context"

	"gestao_cortinas/internal/domain/entities"
)

// IMountingOptionRepository abstracts DynamoDB persistence for MountingOption.
type IMountingOptionRepository interface {
	Create(ctx context.Context, o entities.MountingOption) (entities.MountingOption, error)
	GetByID(ctx context.Context, id string) (entities.MountingOption, error)
	List(ctx context.Context) ([]entities.MountingOption, error)
	Delete(ctx context.Context, id string) (bool, error)
}
