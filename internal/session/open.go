package session

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/payments-admin/internal/config"
)

// Хранилища токена, доступные в конфиге console.token_store.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Open создаёт хранилище токена по настройкам консоли.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	const op = "session.Open"
	switch cfg.TokenStore {
	case "", BackendFile:
		return NewFileStore(cfg.TokenPath), nil
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		store, err := NewRedisStore(ctx, cfg.RedisConnection, cfg.TokenKey)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%s: %w: %q", op, ErrUnknownBackend, cfg.TokenStore)
	}
}
