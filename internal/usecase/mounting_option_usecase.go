package usecase

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/domain/mounting"
	"gestao_cortinas/internal/infrastructure/logger"
	"gestao_cortinas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var (
	ErrMountingOptionNotFound = errors.New("mounting option not found")
	ErrInvalidMountingOption  = errors.New("invalid mounting option")
	ErrInvalidWidth           = errors.New("largura must be positive")
)

const mountingOptionsCacheKey = "montagens"

type CreateMountingOptionInput struct {
	Nome      string
	Descricao string
	TipoBase  string
}

// ArchetypeSummary is the catalog entry shown when picking a tipo_base.
type ArchetypeSummary struct {
	ID         string
	Nome       string
	Descricao  string
	TotalPecas int
}

type IMountingOptionUseCase interface {
	List(ctx context.Context) ([]entities.MountingOption, error)
	Create(ctx context.Context, actor entities.Actor, in CreateMountingOptionInput) (entities.MountingOption, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
	Archetypes() []ArchetypeSummary
	Pieces(archetypeID string, largura, desconto float64) ([]mounting.Piece, error)
	ResolveArchetype(ctx context.Context, tipoMontagem string) (string, error)
}

type MountingOptionUseCase struct {
	repo  interfaces.IMountingOptionRepository
	cache *cache.Cache
	log   *logger.Logger
}

var _ IMountingOptionUseCase = (*MountingOptionUseCase)(nil)
var _ ArchetypeResolver = (*MountingOptionUseCase)(nil)

func NewMountingOptionUseCase(repo interfaces.IMountingOptionRepository, ttl time.Duration, log *logger.Logger) *MountingOptionUseCase {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &MountingOptionUseCase{
		repo:  repo,
		cache: cache.New(ttl, 2*ttl),
		log:   log.With("component", "MountingOptionUseCase"),
	}
}

// List returns the options sorted by name. Results are cached until the TTL expires or the
// catalog is edited through this use case.
func (u *MountingOptionUseCase) List(ctx context.Context) ([]entities.MountingOption, error) {
	if cached, ok := u.cache.Get(mountingOptionsCacheKey); ok {
		return append([]entities.MountingOption(nil), cached.([]entities.MountingOption)...), nil
	}

	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return strings.ToLower(list[i].Nome) < strings.ToLower(list[j].Nome) })
	u.cache.SetDefault(mountingOptionsCacheKey, list)
	return append([]entities.MountingOption(nil), list...), nil
}

func (u *MountingOptionUseCase) Create(ctx context.Context, actor entities.Actor, in CreateMountingOptionInput) (entities.MountingOption, error) {
	nome := strings.TrimSpace(in.Nome)
	tipo := strings.TrimSpace(in.TipoBase)
	if nome == "" {
		return entities.MountingOption{}, ErrInvalidMountingOption
	}
	if !mounting.IsKnown(tipo) {
		return entities.MountingOption{}, mounting.ErrUnknownArchetype
	}

	o := entities.MountingOption{
		ID:        uuid.NewString(),
		Nome:      nome,
		Descricao: strings.TrimSpace(in.Descricao),
		TipoBase:  tipo,
		CreatedAt: time.Now().UTC(),
		CreatedBy: actor.ID,
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.MountingOption{}, err
	}
	u.cache.Delete(mountingOptionsCacheKey)
	u.log.Info("[montagem][usecase] created", "montagem_id", created.ID, "tipo_base", created.TipoBase, "usuario_id", actor.ID)
	return created, nil
}

// Delete removes the option. Ambientes keep the name they recorded.
func (u *MountingOptionUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMountingOption
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMountingOptionNotFound
	}
	u.cache.Delete(mountingOptionsCacheKey)
	u.log.Info("[montagem][usecase] deleted", "montagem_id", id, "usuario_id", actor.ID)
	return nil
}

func (u *MountingOptionUseCase) Archetypes() []ArchetypeSummary {
	all := mounting.All()
	out := make([]ArchetypeSummary, 0, len(all))
	for _, a := range all {
		out = append(out, ArchetypeSummary{ID: a.ID, Nome: a.Nome, Descricao: a.Descricao, TotalPecas: len(a.Pieces)})
	}
	return out
}

func (u *MountingOptionUseCase) Pieces(archetypeID string, largura, desconto float64) ([]mounting.Piece, error) {
	if !isFinite(largura) || largura <= 0 {
		return nil, ErrInvalidWidth
	}
	if !isFinite(desconto) || desconto < 0 {
		return nil, ErrInvalidMeasurement
	}
	return mounting.CalculatePieces(strings.TrimSpace(archetypeID), largura, desconto)
}

// ResolveArchetype maps the free-text mounting type stored on an ambiente to an archetype id.
// Archetype ids resolve to themselves; otherwise the option with that name (case-insensitive) is used.
func (u *MountingOptionUseCase) ResolveArchetype(ctx context.Context, tipoMontagem string) (string, error) {
	tipo := strings.TrimSpace(tipoMontagem)
	if mounting.IsKnown(tipo) {
		return tipo, nil
	}
	options, err := u.List(ctx)
	if err != nil {
		return "", err
	}
	for _, o := range options {
		if strings.EqualFold(o.Nome, tipo) {
			return o.TipoBase, nil
		}
	}
	return "", mounting.ErrUnknownArchetype
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
