package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"delivery_cart/internal/domain/entities"
	"delivery_cart/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultSessionTTL = 72 * time.Hour

// SessionStateRedisRepository persists session snapshots as JSON under
// session:<id>. Keys expire after SESSION_TTL_HOURS plus up to an hour of
// jitter, so that sessions created together do not expire together.
type SessionStateRedisRepository struct {
	client  *redis.Client
	baseTTL time.Duration
}

var _ interfaces.ISessionStateRepository = (*SessionStateRedisRepository)(nil)

func NewSessionStateRedisRepository(client *redis.Client) *SessionStateRedisRepository {
	return &SessionStateRedisRepository{
		client:  client,
		baseTTL: getenvHours("SESSION_TTL_HOURS", defaultSessionTTL),
	}
}

func (r *SessionStateRedisRepository) Save(ctx context.Context, state entities.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(60)) * time.Minute
	if err := r.client.Set(ctx, sessionKey(state.ID), data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *SessionStateRedisRepository) Load(ctx context.Context, id string) (entities.SessionState, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.SessionState{}, nil
	}
	if err != nil {
		return entities.SessionState{}, fmt.Errorf("redis get failed: %w", err)
	}

	var s entities.SessionState
	if err := json.Unmarshal(data, &s); err != nil {
		return entities.SessionState{}, fmt.Errorf("unmarshal session failed: %w", err)
	}
	if s.ID == "" {
		s.ID = id
	}
	return s, nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}
