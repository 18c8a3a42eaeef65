package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/infrastructure/logger"
	"gestao_cortinas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrObraNotFound       = errors.New("obra not found")
	ErrInvalidObraNome    = errors.New("invalid obra nome")
	ErrNoResponsaveis     = errors.New("at least one user id is required")
	ErrResponsavelUnknown = errors.New("responsavel references an unknown user")
)

type CreateObraInput struct {
	Nome         string
	Cliente      string
	Endereco     string
	Responsaveis []string
}

type IObraUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateObraInput) (entities.Obra, error)
	GetByID(ctx context.Context, id string) (entities.Obra, error)
	List(ctx context.Context) ([]entities.Obra, error)
	AddResponsaveis(ctx context.Context, actor entities.Actor, obraID string, userIDs []string) (entities.Obra, error)
}

type ObraUseCase struct {
	repo       interfaces.IObraRepository
	users      interfaces.IUserRepository
	dispatcher INotificationDispatcher
	log        *logger.Logger
}

var _ IObraUseCase = (*ObraUseCase)(nil)

func NewObraUseCase(repo interfaces.IObraRepository, users interfaces.IUserRepository, dispatcher INotificationDispatcher, log *logger.Logger) *ObraUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &ObraUseCase{repo: repo, users: users, dispatcher: dispatcher, log: log.With("component", "ObraUseCase")}
}

func (u *ObraUseCase) Create(ctx context.Context, actor entities.Actor, in CreateObraInput) (entities.Obra, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return entities.Obra{}, ErrInvalidObraNome
	}

	responsaveis := uniqueIDs(in.Responsaveis)
	if err := u.ensureUsersExist(ctx, responsaveis); err != nil {
		return entities.Obra{}, err
	}

	o := entities.Obra{
		ID:           uuid.NewString(),
		Nome:         nome,
		Cliente:      strings.TrimSpace(in.Cliente),
		Endereco:     strings.TrimSpace(in.Endereco),
		Responsaveis: responsaveis,
		CreatedAt:    time.Now().UTC(),
		CreatedBy:    actor.ID,
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Obra{}, err
	}
	u.log.Info("[obra][usecase] created", "obra_id", created.ID, "usuario_id", actor.ID)

	u.dispatcher.NotifyProjectAssignment(ctx, created, responsaveis)
	return created, nil
}

func (u *ObraUseCase) GetByID(ctx context.Context, id string) (entities.Obra, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Obra{}, ErrInvalidObraID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Obra{}, err
	}
	if o.ID == "" {
		return entities.Obra{}, ErrObraNotFound
	}
	return o, nil
}

func (u *ObraUseCase) List(ctx context.Context) ([]entities.Obra, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return strings.ToLower(list[i].Nome) < strings.ToLower(list[j].Nome) })
	return list, nil
}

// AddResponsaveis assigns users to the obra and notifies only the ones not already assigned.
func (u *ObraUseCase) AddResponsaveis(ctx context.Context, actor entities.Actor, obraID string, userIDs []string) (entities.Obra, error) {
	ids := uniqueIDs(userIDs)
	if len(ids) == 0 {
		return entities.Obra{}, ErrNoResponsaveis
	}
	obra, err := u.GetByID(ctx, obraID)
	if err != nil {
		return entities.Obra{}, err
	}

	var added []string
	for _, id := range ids {
		if !obra.HasResponsavel(id) {
			added = append(added, id)
		}
	}
	if len(added) == 0 {
		return obra, nil
	}
	if err := u.ensureUsersExist(ctx, added); err != nil {
		return entities.Obra{}, err
	}

	merged := append(append([]string(nil), obra.Responsaveis...), added...)
	updated, err := u.repo.SetResponsaveis(ctx, obra.ID, merged)
	if err != nil {
		return entities.Obra{}, err
	}
	if updated.ID == "" {
		return entities.Obra{}, ErrObraNotFound
	}
	u.log.Info("[obra][usecase] responsaveis added", "obra_id", updated.ID, "added", len(added), "usuario_id", actor.ID)

	u.dispatcher.NotifyProjectAssignment(ctx, updated, added)
	return updated, nil
}

func (u *ObraUseCase) ensureUsersExist(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	users, err := u.users.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	found := make(map[string]struct{}, len(users))
	for _, usr := range users {
		found[usr.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return ErrResponsavelUnknown
		}
	}
	return nil
}

func uniqueIDs(ids []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
