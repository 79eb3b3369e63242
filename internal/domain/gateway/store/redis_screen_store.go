package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/pkg/redis"
)

const (
	homeKeyPrefix    = "screen:home:"
	weatherKeyPrefix = "screen:weather:"
)

// RedisScreenStore keeps screens as JSON documents in Redis.
// Every key expires ttl after the screen is mounted; updates keep the remaining TTL.
type RedisScreenStore struct {
	client *redis.Client
	health *redis.HealthChecker
	ttl    time.Duration
}

func NewRedisScreenStore(client *redis.Client, ttl time.Duration) *RedisScreenStore {
	return &RedisScreenStore{
		client: client,
		health: redis.NewHealthChecker(client),
		ttl:    ttl,
	}
}

func (s *RedisScreenStore) CreateHome(ctx context.Context, screen *entity.HomeScreen) error {
	return s.client.SetJSON(ctx, s.homeKey(screen.ID), screen, s.ttl)
}

func (s *RedisScreenStore) GetHome(ctx context.Context, id string) (*entity.HomeScreen, error) {
	screen := &entity.HomeScreen{}
	if err := s.client.GetJSON(ctx, s.homeKey(id), screen); err != nil {
		return nil, mapError(err)
	}
	return screen, nil
}

func (s *RedisScreenStore) UpdateHome(ctx context.Context, id string, mutate HomeMutation) (*entity.HomeScreen, error) {
	screen := &entity.HomeScreen{}
	err := s.client.UpdateJSON(ctx, s.homeKey(id), screen, func() error {
		return mutate(screen)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return screen, nil
}

func (s *RedisScreenStore) DeleteHome(ctx context.Context, id string) error {
	return s.delete(ctx, s.homeKey(id))
}

func (s *RedisScreenStore) CreateWeather(ctx context.Context, screen *entity.WeatherScreen) error {
	return s.client.SetJSON(ctx, s.weatherKey(screen.ID), screen, s.ttl)
}

func (s *RedisScreenStore) GetWeather(ctx context.Context, id string) (*entity.WeatherScreen, error) {
	screen := &entity.WeatherScreen{}
	if err := s.client.GetJSON(ctx, s.weatherKey(id), screen); err != nil {
		return nil, mapError(err)
	}
	return screen, nil
}

func (s *RedisScreenStore) UpdateWeather(ctx context.Context, id string, mutate WeatherMutation) (*entity.WeatherScreen, error) {
	screen := &entity.WeatherScreen{}
	err := s.client.UpdateJSON(ctx, s.weatherKey(id), screen, func() error {
		return mutate(screen)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return screen, nil
}

func (s *RedisScreenStore) DeleteWeather(ctx context.Context, id string) error {
	return s.delete(ctx, s.weatherKey(id))
}

// Health runs the Redis round trip check
func (s *RedisScreenStore) Health(ctx context.Context) model.ComponentHealthStatus {
	check := s.health.Check(ctx)

	details := make(map[string]string, len(check.Details)+1)
	for k, v := range check.Details {
		details[k] = v
	}
	details["type"] = "redis"

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}

func (s *RedisScreenStore) delete(ctx context.Context, key string) error {
	exists, err := s.client.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check screen %s: %w", key, err)
	}
	if !exists {
		return ErrScreenNotFound
	}
	return s.client.Delete(ctx, key)
}

func (s *RedisScreenStore) homeKey(id string) string {
	return s.client.BuildKey(homeKeyPrefix + id)
}

func (s *RedisScreenStore) weatherKey(id string) string {
	return s.client.BuildKey(weatherKeyPrefix + id)
}

func mapError(err error) error {
	if errors.Is(err, redis.ErrKeyNotFound) {
		return ErrScreenNotFound
	}
	return err
}
