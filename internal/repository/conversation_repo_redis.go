package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"relay-llm/internal/domain"
)

// redisConversationClient es el subconjunto del cliente de redis que usamos,
// declarado local para poder mockearlo en tests.
type redisConversationClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisConversationRepository persiste cada conversacion como un documento
// JSON bajo una clave prefijada.
type RedisConversationRepository struct {
	client redisConversationClient
	prefix string
}

type conversationRecord struct {
	Messages []domain.Message `json:"messages"`
}

func NewRedisConversationRepository(client *redis.Client) *RedisConversationRepository {
	return &RedisConversationRepository{
		client: client,
		prefix: "conversation:",
	}
}

func (r *RedisConversationRepository) Load(ctx context.Context, id string) ([]domain.Message, error) {
	raw, err := r.client.Get(ctx, r.prefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return []domain.Message{}, nil
	}
	if err != nil {
		return nil, err
	}

	var record conversationRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, err
	}
	if record.Messages == nil {
		return []domain.Message{}, nil
	}
	return record.Messages, nil
}

func (r *RedisConversationRepository) Save(ctx context.Context, id string, messages []domain.Message) error {
	raw, err := json.Marshal(conversationRecord{Messages: messages})
	if err != nil {
		return err
	}
	// Sin expiracion: las conversaciones nunca se borran desde este servicio.
	return r.client.Set(ctx, r.prefix+id, raw, 0).Err()
}
