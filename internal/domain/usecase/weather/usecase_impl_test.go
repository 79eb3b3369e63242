package weather

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
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/gateway/store"
	"weather-app/internal/domain/model/external"
	"weather-app/internal/domain/usecase/screen"
	"weather-app/internal/testutil/providerstub"
	"weather-app/pkg/http"
	"weather-app/pkg/redis"
)

type fakeGateway struct {
	mu         sync.Mutex
	current    func(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error)
	byName     func(ctx context.Context, city string) (*external.CurrentWeatherResponse, error)
	forecast   func(ctx context.Context, lat, lon float64) (*external.ForecastResponse, error)
	nameCalls  []string
	coordCalls []entity.Coordinates
}

func (f *fakeGateway) ReverseGeocode(context.Context, float64, float64) ([]external.GeocodeDTO, error) {
	return nil, errors.New("not used")
}

func (f *fakeGateway) CurrentWeatherByCoords(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error) {
	return f.current(ctx, lat, lon)
}

func (f *fakeGateway) CurrentWeatherByName(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	f.mu.Lock()
	f.nameCalls = append(f.nameCalls, city)
	f.mu.Unlock()
	return f.byName(ctx, city)
}

func (f *fakeGateway) ForecastByCoords(ctx context.Context, lat, lon float64) (*external.ForecastResponse, error) {
	f.mu.Lock()
	f.coordCalls = append(f.coordCalls, entity.Coordinates{Latitude: lat, Longitude: lon})
	f.mu.Unlock()
	return f.forecast(ctx, lat, lon)
}

func londonGateway() *fakeGateway {
	return &fakeGateway{
		current: func(_ context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error) {
			response := providerstub.CurrentWeather("London", "GB", lat, lon, 300.15)
			return &response, nil
		},
		byName: func(context.Context, string) (*external.CurrentWeatherResponse, error) {
			return nil, api.ErrCityNotFound
		},
		forecast: func(context.Context, float64, float64) (*external.ForecastResponse, error) {
			response := providerstub.Forecast(
				providerstub.ForecastItem(1714554000, 285, "01d"), // 2024-05-01 09:00 UTC
				providerstub.ForecastItem(1714564800, 286, "02d"), // 2024-05-01 12:00 UTC
				providerstub.ForecastItem(1714608000, 287, "03d"), // 2024-05-02 00:00 UTC
			)
			return &response, nil
		},
	}
}

func newUseCase(gateway api.WeatherGateway) (UseCase, *store.MemoryScreenStore) {
	screenStore := store.NewMemoryScreenStore(time.Hour)
	return NewWeatherUseCase(gateway, screenStore, screen.NewLifetimes(), time.UTC), screenStore
}

func TestMountLoadsCurrentAndDailyForecast(t *testing.T) {
	useCase, _ := newUseCase(londonGateway())

	weatherScreen, err := useCase.Mount(context.Background(), entity.NewLocation(51.5, -0.12))
	require.NoError(t, err)

	assert.NotEmpty(t, weatherScreen.ID)
	assert.Equal(t, entity.StatusDisplayed, weatherScreen.Status)
	assert.Zero(t, weatherScreen.Pending)
	require.NotNil(t, weatherScreen.Current)
	assert.Equal(t, "London", weatherScreen.Current.Name)
	assert.Equal(t, "GB", weatherScreen.Current.Country)
	require.Len(t, weatherScreen.Forecast, 2)
	assert.Equal(t, "01d", weatherScreen.Forecast[0].Icon)
	assert.Equal(t, "03d", weatherScreen.Forecast[1].Icon)
}

func TestMountEndToEndAgainstProvider(t *testing.T) {
	provider := providerstub.New(t)
	provider.SetCurrent(51.5, -0.12, providerstub.CurrentWeather("London", "GB", 51.5, -0.12, 288.15))
	provider.SetForecast(51.5, -0.12, providerstub.Forecast(
		providerstub.ForecastItem(1714554000, 285, "01d"), // 2024-05-01
		providerstub.ForecastItem(1714564800, 286, "02d"), // 2024-05-01
		providerstub.ForecastItem(1714608000, 287, "03d"), // 2024-05-02
		providerstub.ForecastItem(1714618800, 288, "04d"), // 2024-05-02
		providerstub.ForecastItem(1714694400, 289, "09d"), // 2024-05-03
	))
	gateway := api.NewWeatherGateway(provider.URL, providerstub.APIKey, http.ClientOptions{})
	useCase, _ := newUseCase(gateway)

	weatherScreen, err := useCase.Mount(context.Background(), entity.NewLocation(51.5, -0.12))
	require.NoError(t, err)

	require.Len(t, weatherScreen.Forecast, 3)
	assert.Equal(t, []string{"01d", "03d", "09d"}, []string{
		weatherScreen.Forecast[0].Icon,
		weatherScreen.Forecast[1].Icon,
		weatherScreen.Forecast[2].Icon,
	})
	assert.Less(t, weatherScreen.Forecast[0].Timestamp, weatherScreen.Forecast[1].Timestamp)
	assert.Less(t, weatherScreen.Forecast[1].Timestamp, weatherScreen.Forecast[2].Timestamp)
	assert.Equal(t, entity.StatusDisplayed, weatherScreen.Status)
}

func TestMountForecastFailureKeepsCurrent(t *testing.T) {
	gateway := londonGateway()
	gateway.forecast = func(context.Context, float64, float64) (*external.ForecastResponse, error) {
		return nil, &api.MalformedResponseError{Endpoint: "/data/2.5/forecast", Err: errors.New("list is missing")}
	}
	useCase, _ := newUseCase(gateway)

	weatherScreen, err := useCase.Mount(context.Background(), entity.NewLocation(51.5, -0.12))
	require.NoError(t, err)

	require.NotNil(t, weatherScreen.Current)
	assert.Empty(t, weatherScreen.Forecast)
	assert.Equal(t, entity.StatusDisplayed, weatherScreen.Status)
}

func TestMountWithEveryCallFailingFallsBackToIdle(t *testing.T) {
	failure := errors.New("connection refused")
	useCase, _ := newUseCase(&fakeGateway{
		current: func(context.Context, float64, float64) (*external.CurrentWeatherResponse, error) {
			return nil, failure
		},
		forecast: func(context.Context, float64, float64) (*external.ForecastResponse, error) {
			return nil, failure
		},
	})

	weatherScreen, err := useCase.Mount(context.Background(), entity.NewLocation(51.5, -0.12))
	require.NoError(t, err)

	assert.Equal(t, entity.StatusIdle, weatherScreen.Status)
	assert.Nil(t, weatherScreen.Current)
	assert.Empty(t, weatherScreen.Forecast)
}

func TestSearchNotFoundLeavesStateUnchanged(t *testing.T) {
	gateway := londonGateway()
	useCase, _ := newUseCase(gateway)
	mounted, err := useCase.Mount(context.Background(), entity.NewLocation(51.5, -0.12))
	require.NoError(t, err)

	searched, err := useCase.Search(context.Background(), mounted.ID, "Atlantis")
	require.NoError(t, err)

	assert.Equal(t, mounted, searched)
	assert.Equal(t, []string{"Atlantis"}, gateway.nameCalls)
}

func TestSearchReplacesCurrentThenForecastForReturnedCoordinates(t *testing.T) {
	gateway := londonGateway()
	gateway.byName = func(_ context.Context, city string) (*external.CurrentWeatherResponse, error) {
		response := providerstub.CurrentWeather(city, "FR", 48.85, 2.35, 273.15)
		return &response, nil
	}
	useCase, _ := newUseCase(gateway)
	mounted, err := useCase.Mount(context.Background(), entity.NewLocation(51.5, -0.12))
	require.NoError(t, err)

	gateway.forecast = func(context.Context, float64, float64) (*external.ForecastResponse, error) {
		response := providerstub.Forecast(providerstub.ForecastItem(1714554000, 280, "13d"))
		return &response, nil
	}

	searched, err := useCase.Search(context.Background(), mounted.ID, " Paris ")
	require.NoError(t, err)

	assert.Equal(t, []string{"Paris"}, gateway.nameCalls)
	require.NotNil(t, searched.Current)
	assert.Equal(t, "Paris", searched.Current.Name)
	assert.Equal(t, "FR", searched.Current.Country)
	require.Len(t, searched.Forecast, 1)
	assert.Equal(t, "13d", searched.Forecast[0].Icon)
	assert.Equal(t, entity.Coordinates{Latitude: 48.85, Longitude: 2.35}, gateway.coordCalls[len(gateway.coordCalls)-1])
	assert.Equal(t, mounted.Location, searched.Location)
	assert.Equal(t, entity.StatusDisplayed, searched.Status)
}

func TestSearchForecastFailureKeepsPreviousForecast(t *testing.T) {
	gateway := londonGateway()
	gateway.byName = func(_ context.Context, city string) (*external.CurrentWeatherResponse, error) {
		response := providerstub.CurrentWeather(city, "FR", 48.85, 2.35, 290)
		return &response, nil
	}
	useCase, _ := newUseCase(gateway)
	mounted, err := useCase.Mount(context.Background(), entity.NewLocation(51.5, -0.12))
	require.NoError(t, err)

	gateway.forecast = func(context.Context, float64, float64) (*external.ForecastResponse, error) {
		return nil, errors.New("timeout")
	}

	searched, err := useCase.Search(context.Background(), mounted.ID, "Paris")
	require.NoError(t, err)

	assert.Equal(t, "Paris", searched.Current.Name)
	assert.Equal(t, mounted.Forecast, searched.Forecast)
}

func TestSearchBlankCityIsNoop(t *testing.T) {
	gateway := londonGateway()
	useCase, _ := newUseCase(gateway)
	mounted, err := useCase.Mount(context.Background(), entity.NewLocation(51.5, -0.12))
	require.NoError(t, err)

	searched, err := useCase.Search(context.Background(), mounted.ID, "   ")
	require.NoError(t, err)

	assert.Equal(t, mounted, searched)
	assert.Empty(t, gateway.nameCalls)
}

func TestChangeLocationRefetches(t *testing.T) {
	gateway := londonGateway()
	useCase, _ := newUseCase(gateway)
	mounted, err := useCase.Mount(context.Background(), entity.NewLocation(51.5, -0.12))
	require.NoError(t, err)

	changed, err := useCase.ChangeLocation(context.Background(), mounted.ID, entity.NewLocation(40.71, -74.0))
	require.NoError(t, err)

	assert.Equal(t, entity.NewLocation(40.71, -74.0), changed.Location)
	assert.Equal(t, 40.71, changed.Current.Coords.Latitude)
	assert.Equal(t, entity.Coordinates{Latitude: 40.71, Longitude: -74.0}, gateway.coordCalls[len(gateway.coordCalls)-1])
}

func TestUnknownScreen(t *testing.T) {
	useCase, _ := newUseCase(londonGateway())

	_, err := useCase.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrScreenNotFound)
	_, err = useCase.Search(context.Background(), "missing", "Paris")
	assert.ErrorIs(t, err, store.ErrScreenNotFound)
	_, err = useCase.ChangeLocation(context.Background(), "missing", entity.NewLocation(1, 2))
	assert.ErrorIs(t, err, store.ErrScreenNotFound)
	assert.ErrorIs(t, useCase.Unmount(context.Background(), "missing"), store.ErrScreenNotFound)
}

func TestUnmountCancelsInFlightCalls(t *testing.T) {
	gateway := londonGateway()
	useCase, screenStore := newUseCase(gateway)
	mounted, err := useCase.Mount(context.Background(), entity.NewLocation(51.5, -0.12))
	require.NoError(t, err)

	started := make(chan struct{}, 2)
	cancelled := make(chan error, 2)
	block := func(ctx context.Context) {
		started <- struct{}{}
		<-ctx.Done()
		cancelled <- ctx.Err()
	}
	gateway.current = func(ctx context.Context, _, _ float64) (*external.CurrentWeatherResponse, error) {
		block(ctx)
		return nil, ctx.Err()
	}
	gateway.forecast = func(ctx context.Context, _, _ float64) (*external.ForecastResponse, error) {
		block(ctx)
		return nil, ctx.Err()
	}

	result := make(chan error, 1)
	go func() {
		_, err := useCase.ChangeLocation(context.Background(), mounted.ID, entity.NewLocation(1, 2))
		result <- err
	}()

	<-started
	<-started
	require.NoError(t, useCase.Unmount(context.Background(), mounted.ID))

	assert.ErrorIs(t, <-cancelled, context.Canceled)
	assert.ErrorIs(t, <-cancelled, context.Canceled)
	assert.ErrorIs(t, <-result, store.ErrScreenNotFound)

	_, err = screenStore.GetWeather(context.Background(), mounted.ID)
	assert.ErrorIs(t, err, store.ErrScreenNotFound)
}

func TestExpiredRedisScreenReleasesLifetime(t *testing.T) {
	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)
	client, err := redis.NewClient(redis.NewRedisConfig().WithHost(server.Host()).WithPort(port))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	lifetimes := screen.NewLifetimes()
	useCase := NewWeatherUseCase(londonGateway(), store.NewRedisScreenStore(client, time.Minute), lifetimes, time.UTC)

	weatherScreen, err := useCase.Mount(context.Background(), entity.NewLocation(51.5, -0.12))
	require.NoError(t, err)
	require.True(t, lifetimes.Active(weatherScreen.ID))

	server.FastForward(2 * time.Minute)

	_, err = useCase.ChangeLocation(context.Background(), weatherScreen.ID, entity.NewLocation(48.85, 2.35))
	assert.ErrorIs(t, err, store.ErrScreenNotFound)
	assert.False(t, lifetimes.Active(weatherScreen.ID))
}

func TestScreenGoneFromStoreReleasesLifetimeOnGet(t *testing.T) {
	lifetimes := screen.NewLifetimes()
	screenStore := store.NewMemoryScreenStore(time.Hour)
	useCase := NewWeatherUseCase(londonGateway(), screenStore, lifetimes, time.UTC)

	weatherScreen, err := useCase.Mount(context.Background(), entity.NewLocation(51.5, -0.12))
	require.NoError(t, err)
	require.NoError(t, screenStore.DeleteWeather(context.Background(), weatherScreen.ID))
	require.True(t, lifetimes.Active(weatherScreen.ID))

	_, err = useCase.Get(context.Background(), weatherScreen.ID)
	assert.ErrorIs(t, err, store.ErrScreenNotFound)
	assert.False(t, lifetimes.Active(weatherScreen.ID))
}
