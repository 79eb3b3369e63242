package store

import (
	"context"
	"errors"
	"time"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
)

// ErrScreenNotFound is returned for an unknown or unmounted screen id
var ErrScreenNotFound = errors.New("screen not found")

// HomeMutation edits a home screen in place; returning an error discards the edit
type HomeMutation func(screen *entity.HomeScreen) error

// WeatherMutation edits a weather screen in place; returning an error discards the edit
type WeatherMutation func(screen *entity.WeatherScreen) error

// ScreenStore keeps the display state of mounted screens.
// Updates to one screen are atomic: a mutation always sees the latest committed state.
type ScreenStore interface {
	CreateHome(ctx context.Context, screen *entity.HomeScreen) error
	GetHome(ctx context.Context, id string) (*entity.HomeScreen, error)
	UpdateHome(ctx context.Context, id string, mutate HomeMutation) (*entity.HomeScreen, error)
	DeleteHome(ctx context.Context, id string) error

	CreateWeather(ctx context.Context, screen *entity.WeatherScreen) error
	GetWeather(ctx context.Context, id string) (*entity.WeatherScreen, error)
	UpdateWeather(ctx context.Context, id string, mutate WeatherMutation) (*entity.WeatherScreen, error)
	DeleteWeather(ctx context.Context, id string) error

	Health(ctx context.Context) model.ComponentHealthStatus
}

// Sweeper is implemented by stores that must drop expired screens themselves
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) (int, error)
}
