package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gestao_cortinas/internal/domain/entities"
	"gestao_cortinas/internal/infrastructure/logger"
	"gestao_cortinas/internal/usecase/interfaces"

	goredis "github.com/redis/go-redis/v9"
)

// Event is the payload published on a user's channel.
type Event struct {
	Event string                `json:"event"`
	Data  entities.Notification `json:"data"`
}

const EventNotificationCreated = "notification.created"

// RedisPublisher publishes notifications on one pub/sub channel per recipient:
// "{prefix}:{usuario_id}".
type RedisPublisher struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
}

var _ interfaces.INotificationPublisher = (*RedisPublisher)(nil)

func NewRedisPublisher(log *logger.Logger, addr, prefix string) (*RedisPublisher, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisPublisher{
		log:    log.With("service", "RedisPublisher"),
		rdb:    rdb,
		prefix: normalizePrefix(prefix),
	}, nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		return "notificacoes"
	}
	return prefix
}

// ChannelFor is the channel a front-end session for usuarioID subscribes to.
func ChannelFor(prefix, usuarioID string) string {
	return normalizePrefix(prefix) + ":" + usuarioID
}

func (p *RedisPublisher) Publish(ctx context.Context, n entities.Notification) error {
	if p == nil || p.rdb == nil {
		return fmt.Errorf("redis publisher not initialized")
	}
	raw, err := json.Marshal(Event{Event: EventNotificationCreated, Data: n})
	if err != nil {
		return err
	}
	channel := ChannelFor(p.prefix, n.UsuarioID)
	if err := p.rdb.Publish(ctx, channel, raw).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}
	p.log.Debug("[realtime] published", "channel", channel, "notification_id", n.ID)
	return nil
}

func (p *RedisPublisher) Close() error {
	if p == nil || p.rdb == nil {
		return nil
	}
	return p.rdb.Close()
}
