package home

import (
	"context"
	"errors"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/platform"
)

// ErrLocationUnavailable is returned when an action needs a position the screen does not have yet
var ErrLocationUnavailable = errors.New("no location available yet")

const directionsURL = "http://maps.google.com/maps"

type UseCase interface {
	// Mount opens a home screen and resolves the device position and its city and country
	Mount(ctx context.Context, locator platform.LocationService) (*entity.HomeScreen, error)

	// Search replaces the displayed location with the one of a city, in one update
	Search(ctx context.Context, id string, city string) (*entity.HomeScreen, error)

	// Directions returns the maps deep link to the displayed coordinates
	Directions(ctx context.Context, id string) (string, error)

	// Navigate hands the screen's location to a newly mounted weather screen
	Navigate(ctx context.Context, id string) (*entity.WeatherScreen, error)

	// Get returns the display state of a mounted screen
	Get(ctx context.Context, id string) (*entity.HomeScreen, error)

	// Unmount cancels the screen's in-flight calls and discards its state
	Unmount(ctx context.Context, id string) error
}
