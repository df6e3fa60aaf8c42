package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const previewKeyPrefix = "preview:"

// RedisPreviewStore keeps previews in Redis so every instance behind a
// load balancer sees the same entries.
type RedisPreviewStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ PreviewStore = &RedisPreviewStore{}

func NewRedisPreviewStore(redisURL string, ttl time.Duration) (*RedisPreviewStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	return &RedisPreviewStore{
		rdb: redis.NewClient(opts),
		ttl: ttl,
	}, nil
}

func (s *RedisPreviewStore) Put(ctx context.Context, preview *Preview) (string, error) {
	id := uuid.NewString()
	preview.CreatedAt = time.Now()

	data, err := json.Marshal(preview)
	if err != nil {
		return "", fmt.Errorf("marshal preview: %w", err)
	}
	if err := s.rdb.Set(ctx, previewKeyPrefix+id, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store preview: %w", err)
	}
	return id, nil
}

func (s *RedisPreviewStore) Get(ctx context.Context, id string) (*Preview, error) {
	data, err := s.rdb.Get(ctx, previewKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrPreviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch preview: %w", err)
	}

	var preview Preview
	if err := json.Unmarshal(data, &preview); err != nil {
		return nil, fmt.Errorf("unmarshal preview: %w", err)
	}
	return &preview, nil
}
