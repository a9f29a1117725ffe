// Package redisstore persists the cart in a single redis key.
package redisstore

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/shettigarlolith/LittoralWEB/internal/domain"
	"github.com/shettigarlolith/LittoralWEB/internal/repository"
	"github.com/shettigarlolith/LittoralWEB/pkg/errors"
)

type Store struct {
	rdb *redis.Client
	key string
}

// NewStore creates a redis-backed cart store under the given key
func NewStore(rdb *redis.Client, key string) *Store {
	return &Store{rdb: rdb, key: key}
}

func (s *Store) Load(ctx context.Context) (*domain.CartState, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, &errors.ErrNotFound{Resource: "cart", ID: s.key}
		}
		return nil, err
	}
	return repository.DecodeCart(data)
}

func (s *Store) Save(ctx context.Context, state *domain.CartState) error {
	data, err := repository.EncodeCart(state)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key, data, 0).Err()
}

var _ repository.CartStore = (*Store)(nil)
