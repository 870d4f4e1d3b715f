package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_board/internal/models"
	"github.com/shenikar/incident_board/internal/projection"
)

const (
	boardEventQueueKey = "board_events"
)

// Action - тип изменения коллекции, вызвавшего перерисовку
type Action string

const (
	ActionLoad   Action = "load"
	ActionSubmit Action = "submit"
	ActionVerify Action = "verify"
	ActionFlag   Action = "flag"
	ActionDelete Action = "delete"
)

// BoardEvent - событие об изменении доски инцидентов
type BoardEvent struct {
	Action     Action                `json:"action"`
	IncidentID uuid.UUID             `json:"incident_id,omitempty"`
	Filter     models.SeverityFilter `json:"filter"`
	Summary    projection.Summary    `json:"summary"`
	Timestamp  time.Time             `json:"timestamp"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks -exclude_interfaces=listPusher

// WebhookPublisher - интерфейс для публикации событий доски
type WebhookPublisher interface {
	Publish(ctx context.Context, event BoardEvent) error
}

// listPusher - часть клиента Redis, нужная публикатору
type listPusher interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая очередь Redis
type RedisWebhookPublisher struct {
	redisClient listPusher
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в левую часть списка, воркер забирает справа
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event BoardEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal board event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, boardEventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish board event to Redis: %w", err)
	}
	return nil
}

// NopPublisher отбрасывает события, если приемник не настроен
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, BoardEvent) error { return nil }
