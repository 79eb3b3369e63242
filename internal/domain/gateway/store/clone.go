package store

import "weather-app/internal/domain/entity"

func cloneHome(screen *entity.HomeScreen) *entity.HomeScreen {
	if screen == nil {
		return nil
	}
	c := *screen
	if screen.Location != nil {
		location := *screen.Location
		c.Location = &location
	}
	if screen.Region != nil {
		region := *screen.Region
		c.Region = &region
	}
	if screen.Marker != nil {
		marker := *screen.Marker
		c.Marker = &marker
	}
	if coords, ok := screen.Searched.Coordinates(); ok {
		c.Searched = screen.Searched.WithCoordinates(coords)
	}
	return &c
}

func cloneWeather(screen *entity.WeatherScreen) *entity.WeatherScreen {
	if screen == nil {
		return nil
	}
	c := *screen
	if screen.Current != nil {
		current := *screen.Current
		c.Current = &current
	}
	if screen.Forecast != nil {
		c.Forecast = append([]entity.ForecastEntry(nil), screen.Forecast...)
	}
	return &c
}
