package model

import (
	"strconv"
	"time"

	"weather-app/internal/domain/entity"
	"weather-app/pkg/util/numberutils"
)

const (
	clockLayout  = "15:04:05"
	dateLayout   = "2006-01-02"
	kelvinOffset = 273.15
)

// HomeView is the rendered home screen
type HomeView struct {
	ID       string           `json:"id"`
	Status   string           `json:"status"`
	Pending  int              `json:"pending"`
	Table    LocationTable    `json:"table"`
	Map      *MapView         `json:"map,omitempty"`
	Location *entity.Location `json:"location,omitempty"`
}

// LocationTable holds the four cells of the home table; unknown values are empty
type LocationTable struct {
	City      string `json:"city"`
	Country   string `json:"country"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// MapView is the embedded map, present once a location is known
type MapView struct {
	Region entity.MapRegion `json:"region"`
	Marker entity.MapMarker `json:"marker"`
}

// WeatherView is the rendered weather screen
type WeatherView struct {
	ID       string              `json:"id"`
	Status   string              `json:"status"`
	Pending  int                 `json:"pending"`
	Location entity.Location     `json:"location"`
	Current  *CurrentWeatherView `json:"current,omitempty"`
	Forecast []ForecastItemView  `json:"forecast"`
}

// CurrentWeatherView holds the current conditions as display strings
type CurrentWeatherView struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	Temperature string `json:"temperature"`
	FeelsLike   string `json:"feelsLike"`
	WindSpeed   string `json:"windSpeed"`
	Humidity    string `json:"humidity"`
	Sunrise     string `json:"sunrise"`
	Sunset      string `json:"sunset"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl,omitempty"`
}

// ForecastItemView is one day of the forecast strip
type ForecastItemView struct {
	Date        string `json:"date"`
	Temperature string `json:"temperature"`
	IconURL     string `json:"iconUrl,omitempty"`
}

// NewHomeView renders a home screen
func NewHomeView(screen *entity.HomeScreen) HomeView {
	view := HomeView{
		ID:       screen.ID,
		Status:   string(screen.Status),
		Pending:  screen.Pending,
		Location: screen.Location,
		Table: LocationTable{
			City:    screen.Searched.City,
			Country: screen.Searched.Country,
		},
	}
	if coords, ok := screen.Searched.Coordinates(); ok {
		view.Table.Latitude = numberutils.FormatFloat(coords.Latitude)
		view.Table.Longitude = numberutils.FormatFloat(coords.Longitude)
	}
	if screen.Location != nil && screen.Region != nil && screen.Marker != nil {
		view.Map = &MapView{Region: *screen.Region, Marker: *screen.Marker}
	}
	return view
}

// NewWeatherView renders a weather screen, with times and dates in loc
func NewWeatherView(screen *entity.WeatherScreen, loc *time.Location) WeatherView {
	if loc == nil {
		loc = time.UTC
	}

	view := WeatherView{
		ID:       screen.ID,
		Status:   string(screen.Status),
		Pending:  screen.Pending,
		Location: screen.Location,
		Forecast: make([]ForecastItemView, 0, len(screen.Forecast)),
	}

	if current := screen.Current; current != nil {
		view.Current = &CurrentWeatherView{
			City:        current.Name,
			Country:     current.Country,
			Temperature: Celsius(current.Temperature),
			FeelsLike:   Celsius(current.FeelsLike),
			WindSpeed:   numberutils.FormatFloat(current.WindSpeed) + " m/s",
			Humidity:    strconv.Itoa(current.Humidity) + "%",
			Sunrise:     time.Unix(current.Sunrise, 0).In(loc).Format(clockLayout),
			Sunset:      time.Unix(current.Sunset, 0).In(loc).Format(clockLayout),
			Description: current.Description,
			IconURL:     IconURL(current.Icon),
		}
	}

	for _, entry := range screen.Forecast {
		view.Forecast = append(view.Forecast, ForecastItemView{
			Date:        time.Unix(entry.Timestamp, 0).In(loc).Format(dateLayout),
			Temperature: Celsius(entry.Temperature),
			IconURL:     IconURL(entry.Icon),
		})
	}
	return view
}

// Celsius renders a Kelvin temperature as whole degrees Celsius padded to two digits, e.g. "07°C"
func Celsius(kelvin float64) string {
	return numberutils.PadInt(numberutils.RoundHalfUp(kelvin-kelvinOffset), 2) + "°C"
}

// IconURL returns the provider's image for an icon code, or "" without one
func IconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return "https://openweathermap.org/img/w/" + icon + ".png"
}
