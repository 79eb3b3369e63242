package api

import (
	"context"

	"weather-app/internal/domain/model/external"
)

// WeatherGateway defines the calls made to the weather and geocoding provider
type WeatherGateway interface {
	// ReverseGeocode returns the nearest place names for a position (limit 1)
	ReverseGeocode(ctx context.Context, lat, lon float64) ([]external.GeocodeDTO, error)

	// CurrentWeatherByCoords gets current conditions for a position
	CurrentWeatherByCoords(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error)

	// CurrentWeatherByName gets current conditions for a city name.
	// Returns ErrCityNotFound when the provider answers cod "404".
	CurrentWeatherByName(ctx context.Context, city string) (*external.CurrentWeatherResponse, error)

	// ForecastByCoords gets the 5 day / 3 hour forecast feed for a position
	ForecastByCoords(ctx context.Context, lat, lon float64) (*external.ForecastResponse, error)
}
