package usecase

import (
	"context"
	"errors"
	"net/mail"
	"sort"
	"strings"
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/infrastructure/logger"
	"gestao_cortinas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidUserNome = errors.New("invalid user nome")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidRole     = errors.New("invalid role")
)

type CreateUserInput struct {
	Nome  string
	Email string
	Role  entities.Role
}

type IUserUseCase interface {
	Create(ctx context.Context, in CreateUserInput) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	List(ctx context.Context, role entities.Role) ([]entities.User, error)
	SetAtivo(ctx context.Context, actor entities.Actor, id string, ativo bool) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
	log  *logger.Logger
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, log *logger.Logger) *UserUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &UserUseCase{repo: repo, log: log.With("component", "UserUseCase")}
}

func (u *UserUseCase) Create(ctx context.Context, in CreateUserInput) (entities.User, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return entities.User{}, ErrInvalidUserNome
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(in.Email))
	if err != nil {
		return entities.User{}, ErrInvalidEmail
	}
	if !in.Role.IsValid() {
		return entities.User{}, ErrInvalidRole
	}

	usr := entities.User{
		ID:        uuid.NewString(),
		Nome:      nome,
		Email:     strings.ToLower(addr.Address),
		Role:      in.Role,
		Ativo:     true,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, usr)
	if err != nil {
		return entities.User{}, err
	}
	u.log.Info("[usuario][usecase] created", "usuario_id", created.ID, "role", created.Role)
	return created, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	usr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return usr, nil
}

// List returns every user, or only the ones with role when it is set.
func (u *UserUseCase) List(ctx context.Context, role entities.Role) ([]entities.User, error) {
	var (
		list []entities.User
		err  error
	)
	if role == "" {
		list, err = u.repo.List(ctx)
	} else {
		if !role.IsValid() {
			return nil, ErrInvalidRole
		}
		list, err = u.repo.ListByRoles(ctx, []entities.Role{role})
	}
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return strings.ToLower(list[i].Nome) < strings.ToLower(list[j].Nome) })
	return list, nil
}

func (u *UserUseCase) SetAtivo(ctx context.Context, actor entities.Actor, id string, ativo bool) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	updated, err := u.repo.SetAtivo(ctx, id, ativo)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	u.log.Info("[usuario][usecase] ativo changed", "usuario_id", id, "ativo", ativo, "by", actor.ID)
	return updated, nil
}
