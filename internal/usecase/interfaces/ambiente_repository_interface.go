package interfaces

import (
	"context"
	"errors"

	"gestao_cortinas/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the stored version no longer matches.
var ErrVersionConflict = errors.New("version conflict")

// IAmbienteRepository abstracts DynamoDB persistence for Ambiente.
//
// Not found is reported as a zero Ambiente (empty ID), never as an error.
type IAmbienteRepository interface {
	Create(ctx context.Context, a entities.Ambiente) (entities.Ambiente, error)
	GetByID(ctx context.Context, id string) (entities.Ambiente, error)
	ListByObra(ctx context.Context, obraID string) ([]entities.Ambiente, error)
	ListByStatus(ctx context.Context, status entities.AmbienteStatus) ([]entities.Ambiente, error)
	// Update replaces the whole record if the stored version equals expectedVersion.
	Update(ctx context.Context, a entities.Ambiente, expectedVersion int64) (entities.Ambiente, error)
	Delete(ctx context.Context, id string) (bool, error)
}
