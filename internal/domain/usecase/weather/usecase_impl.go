package weather

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/gateway/store"
	"weather-app/internal/domain/usecase/screen"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

type weatherUseCase struct {
	apiGateway  api.WeatherGateway
	screenStore store.ScreenStore
	lifetimes   *screen.Lifetimes
	timezone    *time.Location
}

func NewWeatherUseCase(apiGateway api.WeatherGateway, screenStore store.ScreenStore, lifetimes *screen.Lifetimes, timezone *time.Location) UseCase {
	if timezone == nil {
		timezone = time.UTC
	}
	return &weatherUseCase{
		apiGateway:  apiGateway,
		screenStore: screenStore,
		lifetimes:   lifetimes,
		timezone:    timezone,
	}
}

// Mount creates the screen and runs the initial load
func (uc *weatherUseCase) Mount(ctx context.Context, location entity.Location) (*entity.WeatherScreen, error) {
	weatherScreen := &entity.WeatherScreen{
		ID:        uuid.NewString(),
		Status:    entity.StatusIdle,
		Location:  location,
		Forecast:  []entity.ForecastEntry{},
		MountedAt: time.Now().UTC(),
	}
	if err := uc.screenStore.CreateWeather(ctx, weatherScreen); err != nil {
		return nil, err
	}
	uc.lifetimes.Start(weatherScreen.ID)
	log.Info(msg.GetMessage("weather.mounted", weatherScreen.ID, location), zap.String("screen_id", weatherScreen.ID))

	return uc.load(ctx, weatherScreen.ID, func(*entity.WeatherScreen) {})
}

// ChangeLocation replaces the screen's location and reloads both slices
func (uc *weatherUseCase) ChangeLocation(ctx context.Context, id string, location entity.Location) (*entity.WeatherScreen, error) {
	return uc.load(ctx, id, func(weatherScreen *entity.WeatherScreen) {
		weatherScreen.Location = location
	})
}

// load fetches current weather and forecast in parallel. Each fetch stores its own
// slice as soon as it completes.
func (uc *weatherUseCase) load(ctx context.Context, id string, prepare func(*entity.WeatherScreen)) (*entity.WeatherScreen, error) {
	return uc.run(ctx, id, prepare, func(opCtx context.Context, started *entity.WeatherScreen) {
		coords := started.Location.Coords
		var wg sync.WaitGroup

		wg.Add(1)
		go func() {
			defer wg.Done()
			uc.fetchCurrent(opCtx, id, coords)
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			uc.fetchForecast(opCtx, id, coords)
		}()

		wg.Wait()
	})
}

// run wraps one operation in the LOADING transition. work gets a context that ends
// with the request or with the screen, whichever comes first.
func (uc *weatherUseCase) run(ctx context.Context, id string, prepare func(*entity.WeatherScreen), work func(context.Context, *entity.WeatherScreen)) (*entity.WeatherScreen, error) {
	started, err := uc.screenStore.UpdateWeather(ctx, id, func(weatherScreen *entity.WeatherScreen) error {
		prepare(weatherScreen)
		weatherScreen.BeginLoading()
		return nil
	})
	if err != nil {
		uc.lifetimes.Release(id, err)
		return nil, err
	}

	opCtx, cancel := uc.lifetimes.Bind(ctx, id)
	work(opCtx, started)
	cancel()

	ended, err := uc.screenStore.UpdateWeather(context.WithoutCancel(ctx), id, func(weatherScreen *entity.WeatherScreen) error {
		weatherScreen.EndLoading()
		return nil
	})
	uc.lifetimes.Release(id, err)
	return ended, err
}

func (uc *weatherUseCase) fetchCurrent(ctx context.Context, id string, coords entity.Coordinates) {
	response, err := uc.apiGateway.CurrentWeatherByCoords(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		screen.LogFailure("weather.current-failed", id, err)
		return
	}

	current := toCurrentWeather(response)
	uc.update(ctx, id, func(weatherScreen *entity.WeatherScreen) {
		weatherScreen.Current = current
	})
}

func (uc *weatherUseCase) fetchForecast(ctx context.Context, id string, coords entity.Coordinates) {
	response, err := uc.apiGateway.ForecastByCoords(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		screen.LogFailure("weather.forecast-failed", id, err)
		return
	}

	daily := DailyForecast(toForecastEntries(response), uc.timezone)
	uc.update(ctx, id, func(weatherScreen *entity.WeatherScreen) {
		weatherScreen.Forecast = daily
	})
}

// Search fetches current weather by name and then the forecast for the returned coordinates.
// A blank city is ignored; a failed step leaves everything not yet replaced untouched.
func (uc *weatherUseCase) Search(ctx context.Context, id string, city string) (*entity.WeatherScreen, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return uc.Get(ctx, id)
	}

	return uc.run(ctx, id, func(*entity.WeatherScreen) {}, func(opCtx context.Context, _ *entity.WeatherScreen) {
		response, err := uc.apiGateway.CurrentWeatherByName(opCtx, city)
		if err != nil {
			if errors.Is(err, api.ErrCityNotFound) {
				log.Warn(msg.GetMessage("weather.city-not-found", city), zap.String("screen_id", id))
				return
			}
			screen.LogFailure("weather.search-failed", id, err, city)
			return
		}

		current := toCurrentWeather(response)
		if !uc.update(opCtx, id, func(weatherScreen *entity.WeatherScreen) {
			weatherScreen.Current = current
		}) {
			return
		}

		uc.fetchForecast(opCtx, id, current.Coords)
	})
}

// Get returns the screen as currently stored
func (uc *weatherUseCase) Get(ctx context.Context, id string) (*entity.WeatherScreen, error) {
	weatherScreen, err := uc.screenStore.GetWeather(ctx, id)
	uc.lifetimes.Release(id, err)
	return weatherScreen, err
}

// Unmount ends the screen lifetime before dropping its state
func (uc *weatherUseCase) Unmount(ctx context.Context, id string) error {
	uc.lifetimes.End(id)
	if err := uc.screenStore.DeleteWeather(ctx, id); err != nil {
		return err
	}
	log.Info(msg.GetMessage("weather.unmounted", id), zap.String("screen_id", id))
	return nil
}

// update writes one slice of display state; updates for an unmounted screen are dropped
func (uc *weatherUseCase) update(ctx context.Context, id string, apply func(*entity.WeatherScreen)) bool {
	_, err := uc.screenStore.UpdateWeather(context.WithoutCancel(ctx), id, func(weatherScreen *entity.WeatherScreen) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		apply(weatherScreen)
		return nil
	})
	if err != nil {
		uc.lifetimes.Release(id, err)
		screen.LogFailure("weather.screen-gone", id, err)
		return false
	}
	return true
}
