package weather

import (
	"time"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model/external"
)

// DailyForecast reduces a 3-hour feed to one entry per calendar date in loc.
// The first entry of each date in feed order is kept and feed order is preserved.
func DailyForecast(feed []entity.ForecastEntry, loc *time.Location) []entity.ForecastEntry {
	if loc == nil {
		loc = time.UTC
	}

	daily := make([]entity.ForecastEntry, 0, len(feed))
	seen := make(map[string]struct{}, len(feed))
	for _, entry := range feed {
		date := time.Unix(entry.Timestamp, 0).In(loc).Format(time.DateOnly)
		if _, processed := seen[date]; processed {
			continue
		}
		seen[date] = struct{}{}
		daily = append(daily, entry)
	}
	return daily
}

func toForecastEntries(response *external.ForecastResponse) []entity.ForecastEntry {
	entries := make([]entity.ForecastEntry, 0, len(response.List))
	for _, item := range response.List {
		entries = append(entries, entity.ForecastEntry{
			Timestamp:   item.Dt,
			Temperature: item.Main.Temp,
			Icon:        item.Icon(),
		})
	}
	return entries
}

func toCurrentWeather(response *external.CurrentWeatherResponse) *entity.CurrentWeather {
	current := &entity.CurrentWeather{
		Name:        response.Name,
		Country:     response.Sys.Country,
		Coords:      entity.Coordinates{Latitude: response.Coord.Lat, Longitude: response.Coord.Lon},
		Temperature: response.Main.Temp,
		FeelsLike:   response.Main.FeelsLike,
		Humidity:    response.Main.Humidity,
		WindSpeed:   response.Wind.Speed,
		Sunrise:     response.Sys.Sunrise,
		Sunset:      response.Sys.Sunset,
	}
	if len(response.Weather) > 0 {
		current.Description = response.Weather[0].Description
		current.Icon = response.Weather[0].Icon
	}
	return current
}
