package session

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/aruneshvv/review-intel/internal/model"
)

// RedisStore keeps the latest state snapshot under a single key.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) SaveState(state model.AnalysisState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(context.Background(), s.key, data, 0).Err()
}

func (s *RedisStore) LoadState() (*model.AnalysisState, error) {
	data, err := s.client.Get(context.Background(), s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state model.AnalysisState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}
