package entity

// CurrentWeather is the provider's current conditions for one place.
// Temperatures are in Kelvin, times in unix seconds.
type CurrentWeather struct {
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	Coords      Coordinates `json:"coords"`
	Temperature float64     `json:"temperature"`
	FeelsLike   float64     `json:"feelsLike"`
	Humidity    int         `json:"humidity"`
	WindSpeed   float64     `json:"windSpeed"`
	Sunrise     int64       `json:"sunrise"`
	Sunset      int64       `json:"sunset"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
}

// ForecastEntry is one 3-hour step of the forecast feed.
type ForecastEntry struct {
	Timestamp   int64   `json:"timestamp"`
	Temperature float64 `json:"temperature"`
	Icon        string  `json:"icon"`
}
