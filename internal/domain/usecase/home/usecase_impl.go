package home

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/gateway/platform"
	"weather-app/internal/domain/gateway/store"
	"weather-app/internal/domain/usecase/screen"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/util/numberutils"
)

type homeUseCase struct {
	apiGateway     api.WeatherGateway
	screenStore    store.ScreenStore
	lifetimes      *screen.Lifetimes
	weatherUseCase weather.UseCase
}

func NewHomeUseCase(apiGateway api.WeatherGateway, screenStore store.ScreenStore, lifetimes *screen.Lifetimes, weatherUseCase weather.UseCase) UseCase {
	return &homeUseCase{
		apiGateway:     apiGateway,
		screenStore:    screenStore,
		lifetimes:      lifetimes,
		weatherUseCase: weatherUseCase,
	}
}

// Mount creates the screen, then asks for permission, reads the position and reverse geocodes it.
// The position is displayed before the place name is known.
func (uc *homeUseCase) Mount(ctx context.Context, locator platform.LocationService) (*entity.HomeScreen, error) {
	homeScreen := &entity.HomeScreen{
		ID:        uuid.NewString(),
		Status:    entity.StatusIdle,
		MountedAt: time.Now().UTC(),
	}
	if err := uc.screenStore.CreateHome(ctx, homeScreen); err != nil {
		return nil, err
	}
	uc.lifetimes.Start(homeScreen.ID)
	log.Info(msg.GetMessage("home.mounted", homeScreen.ID), zap.String("screen_id", homeScreen.ID))

	return uc.run(ctx, homeScreen.ID, func(opCtx context.Context) {
		uc.locate(opCtx, homeScreen.ID, locator)
	})
}

func (uc *homeUseCase) locate(ctx context.Context, id string, locator platform.LocationService) {
	status, err := locator.RequestForegroundPermission(ctx)
	if err != nil {
		screen.LogFailure("home.location-failed", id, err)
		return
	}
	if status != platform.PermissionGranted {
		log.Warn(msg.GetMessage("home.permission-denied", id), zap.String("screen_id", id))
		return
	}

	coords, err := locator.CurrentPosition(ctx)
	if err != nil {
		if errors.Is(err, platform.ErrPermissionDenied) {
			log.Warn(msg.GetMessage("home.permission-denied", id), zap.String("screen_id", id))
			return
		}
		screen.LogFailure("home.location-failed", id, err)
		return
	}

	located := uc.update(ctx, id, func(homeScreen *entity.HomeScreen) {
		location := entity.Location{Coords: coords}
		homeScreen.Location = &location
		homeScreen.Searched = homeScreen.Searched.WithCoordinates(coords)
		showOnMap(homeScreen)
	})
	if !located {
		return
	}

	places, err := uc.apiGateway.ReverseGeocode(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		screen.LogFailure("home.reverse-geocode-failed", id, err)
		return
	}
	if len(places) == 0 {
		return
	}

	uc.update(ctx, id, func(homeScreen *entity.HomeScreen) {
		homeScreen.Searched.City = places[0].Name
		homeScreen.Searched.Country = places[0].Country
		showOnMap(homeScreen)
	})
}

// Search looks the city up by name. On success location, table, region and marker
// are replaced together; a blank city or a miss leaves the screen as it was.
func (uc *homeUseCase) Search(ctx context.Context, id string, city string) (*entity.HomeScreen, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return uc.Get(ctx, id)
	}

	return uc.run(ctx, id, func(opCtx context.Context) {
		response, err := uc.apiGateway.CurrentWeatherByName(opCtx, city)
		if err != nil {
			if errors.Is(err, api.ErrCityNotFound) {
				log.Warn(msg.GetMessage("home.city-not-found", city), zap.String("screen_id", id))
				return
			}
			screen.LogFailure("home.search-failed", id, err, city)
			return
		}

		coords := entity.Coordinates{Latitude: response.Coord.Lat, Longitude: response.Coord.Lon}
		uc.update(opCtx, id, func(homeScreen *entity.HomeScreen) {
			location := entity.Location{Coords: coords}
			homeScreen.Location = &location
			homeScreen.Searched = entity.SearchedLocation{
				City:    response.Name,
				Country: response.Sys.Country,
			}.WithCoordinates(coords)
			showOnMap(homeScreen)
		})
	})
}

// Directions builds the maps link from the coordinates shown in the table
func (uc *homeUseCase) Directions(ctx context.Context, id string) (string, error) {
	homeScreen, err := uc.screenStore.GetHome(ctx, id)
	if err != nil {
		uc.lifetimes.Release(id, err)
		return "", err
	}
	coords, ok := homeScreen.Searched.Coordinates()
	if !ok {
		return "", ErrLocationUnavailable
	}
	return DirectionsURL(coords), nil
}

// DirectionsURL returns the maps deep link with coords as destination
func DirectionsURL(coords entity.Coordinates) string {
	return directionsURL + "?daddr=" + numberutils.FormatFloat(coords.Latitude) + "," + numberutils.FormatFloat(coords.Longitude)
}

// Navigate mounts a weather screen with the home screen's location
func (uc *homeUseCase) Navigate(ctx context.Context, id string) (*entity.WeatherScreen, error) {
	homeScreen, err := uc.screenStore.GetHome(ctx, id)
	if err != nil {
		uc.lifetimes.Release(id, err)
		return nil, err
	}
	if homeScreen.Location == nil {
		return nil, ErrLocationUnavailable
	}
	return uc.weatherUseCase.Mount(ctx, *homeScreen.Location)
}

// Get returns the screen as currently stored
func (uc *homeUseCase) Get(ctx context.Context, id string) (*entity.HomeScreen, error) {
	homeScreen, err := uc.screenStore.GetHome(ctx, id)
	uc.lifetimes.Release(id, err)
	return homeScreen, err
}

// Unmount ends the screen lifetime before dropping its state
func (uc *homeUseCase) Unmount(ctx context.Context, id string) error {
	uc.lifetimes.End(id)
	if err := uc.screenStore.DeleteHome(ctx, id); err != nil {
		return err
	}
	log.Info(msg.GetMessage("home.unmounted", id), zap.String("screen_id", id))
	return nil
}

// run wraps one operation in the LOADING transition. work gets a context that ends
// with the request or with the screen, whichever comes first.
func (uc *homeUseCase) run(ctx context.Context, id string, work func(context.Context)) (*entity.HomeScreen, error) {
	_, err := uc.screenStore.UpdateHome(ctx, id, func(homeScreen *entity.HomeScreen) error {
		homeScreen.BeginLoading()
		return nil
	})
	if err != nil {
		uc.lifetimes.Release(id, err)
		return nil, err
	}

	opCtx, cancel := uc.lifetimes.Bind(ctx, id)
	work(opCtx)
	cancel()

	ended, err := uc.screenStore.UpdateHome(context.WithoutCancel(ctx), id, func(homeScreen *entity.HomeScreen) error {
		homeScreen.EndLoading()
		return nil
	})
	uc.lifetimes.Release(id, err)
	return ended, err
}

// update applies one display change; updates for an unmounted screen are dropped
func (uc *homeUseCase) update(ctx context.Context, id string, apply func(*entity.HomeScreen)) bool {
	_, err := uc.screenStore.UpdateHome(context.WithoutCancel(ctx), id, func(homeScreen *entity.HomeScreen) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		apply(homeScreen)
		return nil
	})
	if err != nil {
		uc.lifetimes.Release(id, err)
		screen.LogFailure("home.screen-gone", id, err)
		return false
	}
	return true
}

// showOnMap centers the region and the marker on the displayed coordinates
func showOnMap(homeScreen *entity.HomeScreen) {
	coords, ok := homeScreen.Searched.Coordinates()
	if !ok || homeScreen.Location == nil {
		return
	}
	region := entity.NewMapRegion(coords)
	homeScreen.Region = &region
	homeScreen.Marker = &entity.MapMarker{Coords: coords, Title: homeScreen.Searched.City}
}
