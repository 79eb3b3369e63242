package api_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/model/external"
	"weather-app/internal/testutil/providerstub"
	"weather-app/pkg/http"
)

func newGateway(provider *providerstub.Server, apiKey string) api.WeatherGateway {
	return api.NewWeatherGateway(provider.URL, apiKey, http.ClientOptions{})
}

func TestReverseGeocode(t *testing.T) {
	provider := providerstub.New(t)
	provider.SetPlace(51.5, -0.12, external.GeocodeDTO{Name: "London", Country: "GB", Lat: 51.5, Lon: -0.12})
	gateway := newGateway(provider, providerstub.APIKey)

	places, err := gateway.ReverseGeocode(context.Background(), 51.5, -0.12)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "London", places[0].Name)
	assert.Equal(t, "GB", places[0].Country)

	empty, err := gateway.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReverseGeocodeNullIsMalformed(t *testing.T) {
	provider := providerstub.New(t)
	provider.SetRaw("/geo/1.0/reverse", `null`)
	gateway := newGateway(provider, providerstub.APIKey)

	_, err := gateway.ReverseGeocode(context.Background(), 1, 2)
	var malformed *api.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "/geo/1.0/reverse", malformed.Endpoint)
}

func TestCurrentWeatherByCoords(t *testing.T) {
	provider := providerstub.New(t)
	provider.SetCurrent(51.5, -0.12, providerstub.CurrentWeather("London", "GB", 51.5, -0.12, 285.15))
	gateway := newGateway(provider, providerstub.APIKey)

	current, err := gateway.CurrentWeatherByCoords(context.Background(), 51.5, -0.12)
	require.NoError(t, err)
	assert.Equal(t, "London", current.Name)
	assert.Equal(t, 285.15, current.Main.Temp)
	assert.Equal(t, "GB", current.Sys.Country)
}

func TestCurrentWeatherByNameNotFound(t *testing.T) {
	provider := providerstub.New(t)
	gateway := newGateway(provider, providerstub.APIKey)

	_, err := gateway.CurrentWeatherByName(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, api.ErrCityNotFound)
}

func TestCurrentWeatherByNameNotFoundInSuccessBody(t *testing.T) {
	provider := providerstub.New(t)
	provider.SetRaw("/data/2.5/weather", `{"cod":"404","message":"city not found"}`)
	gateway := newGateway(provider, providerstub.APIKey)

	_, err := gateway.CurrentWeatherByName(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, api.ErrCityNotFound)
}

func TestNotFoundOutsideCitySearchIsProviderError(t *testing.T) {
	provider := providerstub.New(t)
	notFound := `{"cod":"404","message":"Internal error"}`
	provider.SetStatus("/data/2.5/forecast", 404, notFound)
	provider.SetStatus("/geo/1.0/reverse", 404, notFound)
	gateway := newGateway(provider, providerstub.APIKey)

	calls := map[string]func() error{
		"/data/2.5/forecast": func() error {
			_, err := gateway.ForecastByCoords(context.Background(), 51.5, -0.12)
			return err
		},
		"/geo/1.0/reverse": func() error {
			_, err := gateway.ReverseGeocode(context.Background(), 51.5, -0.12)
			return err
		},
	}
	for endpoint, call := range calls {
		t.Run(endpoint, func(t *testing.T) {
			err := call()
			assert.NotErrorIs(t, err, api.ErrCityNotFound)
			var providerErr *api.ProviderError
			require.ErrorAs(t, err, &providerErr)
			assert.Equal(t, endpoint, providerErr.Endpoint)
			assert.Equal(t, 404, providerErr.StatusCode)
			assert.Equal(t, "404", providerErr.Code)
		})
	}
}

func TestCurrentWeatherByCoordsNotFoundIsProviderError(t *testing.T) {
	provider := providerstub.New(t)
	provider.SetStatus("/data/2.5/weather", 404, `{"cod":"404","message":"Internal error"}`)
	gateway := newGateway(provider, providerstub.APIKey)

	_, err := gateway.CurrentWeatherByCoords(context.Background(), 51.5, -0.12)
	assert.NotErrorIs(t, err, api.ErrCityNotFound)
	var providerErr *api.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, 404, providerErr.StatusCode)

	_, err = gateway.CurrentWeatherByName(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, api.ErrCityNotFound)
}

func TestCurrentWeatherByNameTrimsInput(t *testing.T) {
	provider := providerstub.New(t)
	provider.SetCity("Paris", providerstub.CurrentWeather("Paris", "FR", 48.85, 2.35, 290))
	gateway := newGateway(provider, providerstub.APIKey)

	current, err := gateway.CurrentWeatherByName(context.Background(), "  paris ")
	require.NoError(t, err)
	assert.Equal(t, "Paris", current.Name)
	assert.Equal(t, 48.85, current.Coord.Lat)
}

func TestCurrentWeatherMissingFieldsIsMalformed(t *testing.T) {
	provider := providerstub.New(t)
	provider.SetRaw("/data/2.5/weather", `{"cod":200,"name":"London","main":{"temp":280}}`)
	gateway := newGateway(provider, providerstub.APIKey)

	_, err := gateway.CurrentWeatherByCoords(context.Background(), 51.5, -0.12)
	var malformed *api.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Error(), "coord is missing")
}

func TestCurrentWeatherInvalidJSONIsMalformed(t *testing.T) {
	provider := providerstub.New(t)
	provider.SetRaw("/data/2.5/weather", `{"cod":200,`)
	gateway := newGateway(provider, providerstub.APIKey)

	_, err := gateway.CurrentWeatherByCoords(context.Background(), 51.5, -0.12)
	var malformed *api.MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestForecastByCoords(t *testing.T) {
	provider := providerstub.New(t)
	provider.SetForecast(51.5, -0.12, providerstub.Forecast(
		providerstub.ForecastItem(1700000000, 280, "01d"),
		providerstub.ForecastItem(1700010800, 281, "02d"),
	))
	gateway := newGateway(provider, providerstub.APIKey)

	forecast, err := gateway.ForecastByCoords(context.Background(), 51.5, -0.12)
	require.NoError(t, err)
	require.Len(t, forecast.List, 2)
	assert.Equal(t, "02d", forecast.List[1].Icon())
}

func TestForecastWithoutListIsMalformed(t *testing.T) {
	provider := providerstub.New(t)
	provider.SetRaw("/data/2.5/forecast", `{"cod":"200","cnt":0}`)
	gateway := newGateway(provider, providerstub.APIKey)

	_, err := gateway.ForecastByCoords(context.Background(), 51.5, -0.12)
	var malformed *api.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "/data/2.5/forecast", malformed.Endpoint)
}

func TestWrongAPIKeyIsProviderError(t *testing.T) {
	provider := providerstub.New(t)
	gateway := newGateway(provider, "wrong-key")

	_, err := gateway.CurrentWeatherByCoords(context.Background(), 51.5, -0.12)
	var providerErr *api.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, 401, providerErr.StatusCode)
	assert.Equal(t, "401", providerErr.Code)
	assert.Equal(t, "Invalid API key", providerErr.Message)
}

func TestCancelledContextIsTransportError(t *testing.T) {
	provider := providerstub.New(t)
	gateway := newGateway(provider, providerstub.APIKey)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := gateway.ForecastByCoords(ctx, 51.5, -0.12)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
