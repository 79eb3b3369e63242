package entity

import "time"

// ScreenStatus is the per-screen loading state.
type ScreenStatus string

const (
	StatusIdle      ScreenStatus = "IDLE"
	StatusLoading   ScreenStatus = "LOADING"
	StatusDisplayed ScreenStatus = "DISPLAYED"
)

// HomeScreen is the display state of the location screen.
type HomeScreen struct {
	ID        string           `json:"id"`
	Status    ScreenStatus     `json:"status"`
	Pending   int              `json:"pending"`
	Location  *Location        `json:"location,omitempty"`
	Searched  SearchedLocation `json:"searched"`
	Region    *MapRegion       `json:"region,omitempty"`
	Marker    *MapMarker       `json:"marker,omitempty"`
	MountedAt time.Time        `json:"mountedAt"`
}

// HasContent reports whether anything beyond the empty initial table is displayed.
func (h *HomeScreen) HasContent() bool {
	_, hasCoords := h.Searched.Coordinates()
	return h.Location != nil || hasCoords || h.Searched.City != ""
}

// BeginLoading marks one more operation in flight.
func (h *HomeScreen) BeginLoading() {
	h.Pending++
	h.Status = StatusLoading
}

// EndLoading marks an operation finished and settles the status.
func (h *HomeScreen) EndLoading() {
	h.Pending, h.Status = settle(h.Pending, h.HasContent())
}

// WeatherScreen is the display state of the weather screen.
type WeatherScreen struct {
	ID        string          `json:"id"`
	Status    ScreenStatus    `json:"status"`
	Pending   int             `json:"pending"`
	Location  Location        `json:"location"`
	Current   *CurrentWeather `json:"current,omitempty"`
	Forecast  []ForecastEntry `json:"forecast"`
	MountedAt time.Time       `json:"mountedAt"`
}

// HasContent reports whether current weather or a forecast is displayed.
func (w *WeatherScreen) HasContent() bool {
	return w.Current != nil || len(w.Forecast) > 0
}

// BeginLoading marks one more operation in flight.
func (w *WeatherScreen) BeginLoading() {
	w.Pending++
	w.Status = StatusLoading
}

// EndLoading marks an operation finished and settles the status.
func (w *WeatherScreen) EndLoading() {
	w.Pending, w.Status = settle(w.Pending, w.HasContent())
}

func settle(pending int, hasContent bool) (int, ScreenStatus) {
	if pending > 0 {
		pending--
	}
	switch {
	case pending > 0:
		return pending, StatusLoading
	case hasContent:
		return pending, StatusDisplayed
	default:
		return pending, StatusIdle
	}
}
