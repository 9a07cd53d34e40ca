package bootstrap

import (
	"context"
	"log/slog"

	"pos-core/internal/infra/cartstore"
	"pos-core/internal/pkg/config"
	"pos-core/internal/usecase/commands"
	"pos-core/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CartStoreModule = fx.Module("cartstore",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(commands.SessionStore)),
			fx.As(new(queries.SessionReader)),
		),
	),
)

// NewSessionStore picks the session backend: Redis when configured, process
// memory otherwise.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config) (commands.SessionStore, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("cart sessions stored in process memory")
		return cartstore.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("cart sessions stored in Redis", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.SessionTTL)
	return cartstore.NewRedisStore(client, cfg.Redis.SessionTTL), nil
}
