package interfaces

import (
	"context"

	"gestao_cortinas/internal/domain/entities"
)

// INotificationPublisher delivers a persisted notification to a live channel
// (e.g. Redis pub/sub consumed by the web front-end).
type INotificationPublisher interface {
	Publish(ctx context.Context, n entities.Notification) error
}

// IOpsNotifier pushes a short summary to the operations chat (shoutrrr URLs).
type IOpsNotifier interface {
	Notify(ctx context.Context, title, message string) error
}

// IWorkflowMetrics records workflow and notification counters.
type IWorkflowMetrics interface {
	TransitionObserved(from, to entities.AmbienteStatus, accepted bool)
	NotificationCreated(tipo entities.NotificationType)
	NotificationFailed(tipo entities.NotificationType)
	PublishFailed(channel string)
}
