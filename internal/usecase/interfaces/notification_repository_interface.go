package interfaces

import (
	"context"
	"time"

	"gestao_cortinas/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// Notifications are append-only apart from ReadAt.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	// ListByUsuario returns the user's notifications newest first. limit <= 0 means no limit.
	ListByUsuario(ctx context.Context, usuarioID string, limit int) ([]entities.Notification, error)
	CountUnread(ctx context.Context, usuarioID string) (int, error)
	MarkRead(ctx context.Context, id string, at time.Time) (entities.Notification, error)
	MarkAllRead(ctx context.Context, usuarioID string, at time.Time) (int, error)
}
