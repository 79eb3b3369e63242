package weather

import (
	"context"

	"weather-app/internal/domain/entity"
)

type UseCase interface {
	// Mount opens a weather screen for location and loads current weather and forecast in parallel
	Mount(ctx context.Context, location entity.Location) (*entity.WeatherScreen, error)

	// ChangeLocation points a mounted screen at a new location and reloads both slices
	ChangeLocation(ctx context.Context, id string, location entity.Location) (*entity.WeatherScreen, error)

	// Search reloads current weather by city name, then the forecast for the returned coordinates
	Search(ctx context.Context, id string, city string) (*entity.WeatherScreen, error)

	// Get returns the display state of a mounted screen
	Get(ctx context.Context, id string) (*entity.WeatherScreen, error)

	// Unmount cancels the screen's in-flight calls and discards its state
	Unmount(ctx context.Context, id string) error
}
