package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/payments-admin/internal/config"
)

// RedisStore хранит токен под одним ключом в redis. Позволяет нескольким
// консолям разделять одну сессию администратора.
type RedisStore struct {
	Db  *redis.Client
	key string
}

// NewRedisStore подключается к redis и проверяет соединение.
func NewRedisStore(ctx context.Context, cfg config.RedisConnection, key string) (*RedisStore, error) {
	const op = "session.NewRedisStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{Db: db, key: key}, nil
}

func (s *RedisStore) Get(ctx context.Context) (string, bool) {
	val, err := s.Db.Get(ctx, s.key).Result()
	if err != nil {
		return "", false
	}
	return val, val != ""
}

func (s *RedisStore) Set(ctx context.Context, token string) error {
	const op = "session.RedisStore.Set"
	if err := s.Db.Set(ctx, s.key, token, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	const op = "session.RedisStore.Clear"
	if err := s.Db.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с redis.
func (s *RedisStore) Close() error {
	return s.Db.Close()
}
