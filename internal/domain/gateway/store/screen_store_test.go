package store

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/pkg/redis"
)

type storeFactory func(t *testing.T) ScreenStore

func newRedisStore(t *testing.T) (*RedisScreenStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)

	client, err := redis.NewClient(redis.NewRedisConfig().
		WithHost(server.Host()).
		WithPort(port).
		WithNamespace("weather-app"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisScreenStore(client, time.Hour), server
}

func factories() map[string]storeFactory {
	return map[string]storeFactory{
		"memory": func(t *testing.T) ScreenStore { return NewMemoryScreenStore(time.Hour) },
		"redis": func(t *testing.T) ScreenStore {
			s, _ := newRedisStore(t)
			return s
		},
	}
}

func TestScreenStoreHomeLifecycle(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			ctx := context.Background()

			require.NoError(t, s.CreateHome(ctx, &entity.HomeScreen{ID: "h1", Status: entity.StatusIdle}))

			updated, err := s.UpdateHome(ctx, "h1", func(screen *entity.HomeScreen) error {
				location := entity.NewLocation(51.5, -0.12)
				screen.Location = &location
				screen.Searched = screen.Searched.WithCoordinates(location.Coords)
				return nil
			})
			require.NoError(t, err)
			require.NotNil(t, updated.Location)
			assert.Equal(t, 51.5, updated.Location.Coords.Latitude)

			got, err := s.GetHome(ctx, "h1")
			require.NoError(t, err)
			coords, ok := got.Searched.Coordinates()
			require.True(t, ok)
			assert.Equal(t, -0.12, coords.Longitude)

			require.NoError(t, s.DeleteHome(ctx, "h1"))
			_, err = s.GetHome(ctx, "h1")
			assert.ErrorIs(t, err, ErrScreenNotFound)
			assert.ErrorIs(t, s.DeleteHome(ctx, "h1"), ErrScreenNotFound)
		})
	}
}

func TestScreenStoreFailedMutationIsDiscarded(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			ctx := context.Background()
			require.NoError(t, s.CreateWeather(ctx, &entity.WeatherScreen{ID: "w1", Status: entity.StatusIdle}))

			boom := errors.New("boom")
			_, err := s.UpdateWeather(ctx, "w1", func(screen *entity.WeatherScreen) error {
				screen.Current = &entity.CurrentWeather{Name: "London"}
				return boom
			})
			assert.ErrorIs(t, err, boom)

			got, err := s.GetWeather(ctx, "w1")
			require.NoError(t, err)
			assert.Nil(t, got.Current)
		})
	}
}

func TestScreenStoreUpdateUnknownScreen(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			_, err := s.UpdateWeather(context.Background(), "missing", func(*entity.WeatherScreen) error { return nil })
			assert.ErrorIs(t, err, ErrScreenNotFound)
			_, err = s.UpdateHome(context.Background(), "missing", func(*entity.HomeScreen) error { return nil })
			assert.ErrorIs(t, err, ErrScreenNotFound)
		})
	}
}

func TestScreenStoreConcurrentSlicesDoNotOverwriteEachOther(t *testing.T) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			ctx := context.Background()
			require.NoError(t, s.CreateWeather(ctx, &entity.WeatherScreen{ID: "w1", Status: entity.StatusIdle}))

			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err := s.UpdateWeather(ctx, "w1", func(screen *entity.WeatherScreen) error {
					screen.Current = &entity.CurrentWeather{Name: "London"}
					return nil
				})
				assert.NoError(t, err)
			}()
			go func() {
				defer wg.Done()
				_, err := s.UpdateWeather(ctx, "w1", func(screen *entity.WeatherScreen) error {
					screen.Forecast = []entity.ForecastEntry{{Timestamp: 1700000000}}
					return nil
				})
				assert.NoError(t, err)
			}()
			wg.Wait()

			got, err := s.GetWeather(ctx, "w1")
			require.NoError(t, err)
			require.NotNil(t, got.Current)
			assert.Equal(t, "London", got.Current.Name)
			assert.Len(t, got.Forecast, 1)
		})
	}
}

func TestMemoryScreenStoreReturnsCopies(t *testing.T) {
	s := NewMemoryScreenStore(time.Hour)
	ctx := context.Background()
	require.NoError(t, s.CreateWeather(ctx, &entity.WeatherScreen{
		ID:       "w1",
		Current:  &entity.CurrentWeather{Name: "London"},
		Forecast: []entity.ForecastEntry{{Icon: "01d"}},
	}))

	got, err := s.GetWeather(ctx, "w1")
	require.NoError(t, err)
	got.Current.Name = "Paris"
	got.Forecast[0].Icon = "10n"

	again, err := s.GetWeather(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "London", again.Current.Name)
	assert.Equal(t, "01d", again.Forecast[0].Icon)
}

func TestMemoryScreenStoreHealth(t *testing.T) {
	s := NewMemoryScreenStore(time.Hour)
	require.NoError(t, s.CreateHome(context.Background(), &entity.HomeScreen{ID: "h1"}))

	health := s.Health(context.Background())
	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, "1", health.Details["home_screens"])
	assert.Equal(t, "0", health.Details["weather_screens"])
}

func TestMemoryScreenStoreExpiresScreensAfterTTL(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryScreenStore(time.Minute)
	s.now = func() time.Time { return now }
	ctx := context.Background()
	require.NoError(t, s.CreateHome(ctx, &entity.HomeScreen{ID: "h1"}))
	require.NoError(t, s.CreateWeather(ctx, &entity.WeatherScreen{ID: "w1"}))

	now = now.Add(30 * time.Second)
	_, err := s.UpdateHome(ctx, "h1", func(screen *entity.HomeScreen) error {
		screen.Searched.City = "London"
		return nil
	})
	require.NoError(t, err)

	now = now.Add(31 * time.Second)
	_, err = s.GetHome(ctx, "h1")
	assert.ErrorIs(t, err, ErrScreenNotFound)
	_, err = s.UpdateWeather(ctx, "w1", func(*entity.WeatherScreen) error { return nil })
	assert.ErrorIs(t, err, ErrScreenNotFound)
	assert.ErrorIs(t, s.DeleteHome(ctx, "h1"), ErrScreenNotFound)

	health := s.Health(ctx)
	assert.Equal(t, "0", health.Details["home_screens"])
	assert.Equal(t, "0", health.Details["weather_screens"])
}

func TestMemoryScreenStoreSweep(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryScreenStore(time.Minute)
	s.now = func() time.Time { return now }
	ctx := context.Background()
	require.NoError(t, s.CreateHome(ctx, &entity.HomeScreen{ID: "h1"}))
	require.NoError(t, s.CreateWeather(ctx, &entity.WeatherScreen{ID: "w1"}))
	now = now.Add(45 * time.Second)
	require.NoError(t, s.CreateWeather(ctx, &entity.WeatherScreen{ID: "w2"}))

	removed, err := s.Sweep(ctx, now.Add(30*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	health := s.Health(ctx)
	assert.Equal(t, "0", health.Details["home_screens"])
	assert.Equal(t, "1", health.Details["weather_screens"])
	_, err = s.GetWeather(ctx, "w2")
	assert.NoError(t, err)
}

func TestMemoryScreenStoreWithoutTTLNeverExpires(t *testing.T) {
	s := NewMemoryScreenStore(0)
	ctx := context.Background()
	require.NoError(t, s.CreateHome(ctx, &entity.HomeScreen{ID: "h1"}))

	removed, err := s.Sweep(ctx, time.Now().Add(365*24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, removed)
	_, err = s.GetHome(ctx, "h1")
	assert.NoError(t, err)
}

func TestRedisScreenStoreKeysAndTTL(t *testing.T) {
	s, server := newRedisStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateHome(ctx, &entity.HomeScreen{ID: "h1"}))

	key := "weather-app::screen:home:h1"
	assert.True(t, server.Exists(key))
	assert.Equal(t, time.Hour, server.TTL(key))

	_, err := s.UpdateHome(ctx, "h1", func(screen *entity.HomeScreen) error {
		screen.Searched.City = "London"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, server.TTL(key))
}

func TestRedisScreenStoreHealth(t *testing.T) {
	s, server := newRedisStore(t)

	health := s.Health(context.Background())
	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, "redis", health.Details["type"])

	server.Close()
	health = s.Health(context.Background())
	assert.Equal(t, model.StatusDown, health.Status)
}
