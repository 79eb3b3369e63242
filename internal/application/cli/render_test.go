package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"weather-app/internal/domain/model"
)

func TestRenderHomeShowsTable(t *testing.T) {
	out := RenderHome(model.HomeView{
		Status: "DISPLAYED",
		Table:  model.LocationTable{City: "London", Country: "GB", Latitude: "51.5", Longitude: "-0.12"},
		Map:    &model.MapView{},
	})

	assert.Contains(t, out, "London")
	assert.Contains(t, out, "GB")
	assert.Contains(t, out, "Map centered on 51.5, -0.12")
	assert.Contains(t, out, "Status DISPLAYED")
}

func TestRenderHomeEmptyCells(t *testing.T) {
	out := RenderHome(model.HomeView{Status: "IDLE"})

	assert.Equal(t, 4, strings.Count(out, " -"))
	assert.NotContains(t, out, "Map centered")
}

func TestRenderWeather(t *testing.T) {
	out := RenderWeather(model.WeatherView{
		Status: "DISPLAYED",
		Current: &model.CurrentWeatherView{
			City:        "London",
			Country:     "GB",
			Temperature: "12°C",
			Humidity:    "60%",
			Description: "clear sky",
		},
		Forecast: []model.ForecastItemView{
			{Date: "2023-11-14", Temperature: "07°C"},
			{Date: "2023-11-15", Temperature: "09°C"},
		},
	})

	assert.Contains(t, out, "London, GB")
	assert.Contains(t, out, "12°C")
	assert.Contains(t, out, "clear sky")
	assert.Contains(t, out, "2023-11-14")
	assert.Contains(t, out, "09°C")
}

func TestRenderWeatherWithoutCurrent(t *testing.T) {
	out := RenderWeather(model.WeatherView{Status: "IDLE", Forecast: []model.ForecastItemView{}})

	assert.Contains(t, out, "No current weather")
	assert.Contains(t, out, "Status IDLE")
}
