package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pos-core/internal/domain/cart"
	"pos-core/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "pos:session:"

// RedisStore persists cart sessions in Redis so held carts survive terminal
// restarts. Each save refreshes the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(operatorID uuid.UUID) string {
	return sessionKeyPrefix + operatorID.String()
}

func (s *RedisStore) Load(ctx context.Context, operatorID uuid.UUID) (*cart.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(operatorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.NewSession(operatorID), nil
		}
		return nil, infra.WrapRepoErr("failed to load cart session", err, infra.KindUnavailable)
	}

	var state cart.SessionState
	if err := json.Unmarshal(payload, &state); err != nil {
		// A corrupt session is unrecoverable; start the operator fresh.
		return cart.NewSession(operatorID), nil
	}
	return cart.RestoreSession(state), nil
}

func (s *RedisStore) Save(ctx context.Context, session *cart.Session) error {
	payload, err := json.Marshal(session.State())
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart session", err)
	}

	if err := s.client.Set(ctx, sessionKey(session.OperatorID()), payload, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save cart session", err, infra.KindUnavailable)
	}
	return nil
}
