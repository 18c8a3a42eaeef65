package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
)

const defaultInboxLimit = 50

// INotificationUseCase is the caller's inbox. Users only ever see their own notifications.
type INotificationUseCase interface {
	ListMine(ctx context.Context, actor entities.Actor, limit int) ([]entities.Notification, error)
	CountUnread(ctx context.Context, actor entities.Actor) (int, error)
	MarkRead(ctx context.Context, actor entities.Actor, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, actor entities.Actor) (int, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
	now  func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *NotificationUseCase) ListMine(ctx context.Context, actor entities.Actor, limit int) ([]entities.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultInboxLimit
	}
	return u.repo.ListByUsuario(ctx, actor.ID, limit)
}

func (u *NotificationUseCase) CountUnread(ctx context.Context, actor entities.Actor) (int, error) {
	return u.repo.CountUnread(ctx, actor.ID)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, actor entities.Actor, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	// Someone else's notification is reported as missing.
	if n.ID == "" || n.UsuarioID != actor.ID {
		return entities.Notification{}, ErrNotificationNotFound
	}
	if n.IsRead() {
		return n, nil
	}

	updated, err := u.repo.MarkRead(ctx, id, u.now())
	if err != nil {
		return entities.Notification{}, err
	}
	if updated.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return updated, nil
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, actor entities.Actor) (int, error) {
	return u.repo.MarkAllRead(ctx, actor.ID, u.now())
}
