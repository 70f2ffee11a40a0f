package tokenstore

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/voyago/admin-panel/internal/config"
)

// RedisStore persists the token pair in Redis so it survives panel restarts.
type RedisStore struct {
	client *redis.Client
	prefix string
	log    *zap.Logger
}

// NewRedisStore connects to Redis using the provided configuration. An
// unreachable Redis is logged, not fatal; reads then behave as token-absent.
func NewRedisStore(cfg config.RedisConfig, prefix string, logger *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisStore{client: client, prefix: prefix, log: logger}
}

// Save stores the pair under the fixed keys. Last writer wins.
func (s *RedisStore) Save(ctx context.Context, access, refresh string) error {
	if err := s.client.Set(ctx, s.prefix+accessKeySuffix, access, 0).Err(); err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+refreshKeySuffix, refresh, 0).Err()
}

// Read returns the access token if one is present. Storage errors degrade to
// absent; the session guard then settles anonymous.
func (s *RedisStore) Read(ctx context.Context) (string, bool) {
	val, err := s.client.Get(ctx, s.prefix+accessKeySuffix).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("token read failed", zap.Error(err))
		}
		return "", false
	}
	return val, true
}

// ReadRefresh returns the refresh token if one is present.
func (s *RedisStore) ReadRefresh(ctx context.Context) (string, bool) {
	val, err := s.client.Get(ctx, s.prefix+refreshKeySuffix).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("token read failed", zap.Error(err))
		}
		return "", false
	}
	return val, true
}

// Clear removes both keys.
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.prefix+accessKeySuffix, s.prefix+refreshKeySuffix).Err()
}

// Close closes the underlying client.
func (s *RedisStore) Close() {
	if s != nil && s.client != nil {
		_ = s.client.Close()
	}
}

// Ping verifies Redis connectivity for readiness probes.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
