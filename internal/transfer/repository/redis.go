package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fekuna/omnipos-stock-service/internal/apperror"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-stock-service/internal/transfer"
	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "transfer:draft:"

type RedisRepository struct {
	cache *cache.RedisClient
}

var _ transfer.DraftRepository = (*RedisRepository)(nil)

func NewRedisRepository(c *cache.RedisClient) *RedisRepository {
	return &RedisRepository{cache: c}
}

// Get returns nil, nil when the session has no draft.
func (r *RedisRepository) Get(ctx context.Context, sessionID string) (*transfer.Draft, error) {
	val, err := r.cache.Client.Get(ctx, draftKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperror.Remote("drafts.get", apperror.KindNetwork, err)
	}

	var d transfer.Draft
	if err := json.Unmarshal(val, &d); err != nil {
		return nil, apperror.Remote("drafts.get", apperror.KindUnknown, err)
	}
	return &d, nil
}

func (r *RedisRepository) Save(ctx context.Context, sessionID string, d *transfer.Draft, ttl time.Duration) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := r.cache.Client.Set(ctx, draftKeyPrefix+sessionID, data, ttl).Err(); err != nil {
		return apperror.Remote("drafts.save", apperror.KindNetwork, err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.cache.Client.Del(ctx, draftKeyPrefix+sessionID).Err(); err != nil {
		return apperror.Remote("drafts.delete", apperror.KindNetwork, err)
	}
	return nil
}
