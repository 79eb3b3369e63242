// Package providerstub serves canned OpenWeatherMap responses for tests.
package providerstub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"

	"weather-app/internal/domain/model/external"
	"weather-app/pkg/util/numberutils"
)

const APIKey = "test-key"

// Server is a fake provider keyed by "lat,lon" and lower-cased city names.
type Server struct {
	*httptest.Server

	mu        sync.RWMutex
	current   map[string]external.CurrentWeatherResponse
	byName    map[string]external.CurrentWeatherResponse
	forecasts map[string]external.ForecastResponse
	places    map[string][]external.GeocodeDTO
	raw       map[string]rawResponse

	Calls atomic.Int64
}

// New starts a stub server; it is closed when the test ends.
func New(t interface{ Cleanup(func()) }) *Server {
	s := &Server{
		current:   make(map[string]external.CurrentWeatherResponse),
		byName:    make(map[string]external.CurrentWeatherResponse),
		forecasts: make(map[string]external.ForecastResponse),
		places:    make(map[string][]external.GeocodeDTO),
		raw:       make(map[string]rawResponse),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Key renders coordinates the way the gateway sends them.
func Key(lat, lon float64) string {
	return numberutils.FormatFloat(lat) + "," + numberutils.FormatFloat(lon)
}

func (s *Server) SetCurrent(lat, lon float64, response external.CurrentWeatherResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current[Key(lat, lon)] = response
}

func (s *Server) SetCity(name string, response external.CurrentWeatherResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byName[strings.ToLower(name)] = response
}

func (s *Server) SetForecast(lat, lon float64, response external.ForecastResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forecasts[Key(lat, lon)] = response
}

func (s *Server) SetPlace(lat, lon float64, places ...external.GeocodeDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places[Key(lat, lon)] = places
}

type rawResponse struct {
	status int
	body   string
}

// SetRaw makes path answer body verbatim with status 200, whatever the query.
func (s *Server) SetRaw(path, body string) {
	s.SetStatus(path, http.StatusOK, body)
}

// SetStatus makes path answer body verbatim with status, whatever the query.
func (s *Server) SetStatus(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw[path] = rawResponse{status: status, body: body}
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.Calls.Add(1)
	query := r.URL.Query()
	if query.Get("appid") != APIKey {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"cod": 401, "message": "Invalid API key"})
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if raw, ok := s.raw[r.URL.Path]; ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(raw.status)
		_, _ = w.Write([]byte(raw.body))
		return
	}

	key := query.Get("lat") + "," + query.Get("lon")
	switch r.URL.Path {
	case "/geo/1.0/reverse":
		places, ok := s.places[key]
		if !ok {
			places = []external.GeocodeDTO{}
		}
		writeJSON(w, http.StatusOK, places)
	case "/data/2.5/weather":
		if name := query.Get("q"); name != "" {
			if response, ok := s.byName[strings.ToLower(name)]; ok {
				writeJSON(w, http.StatusOK, response)
				return
			}
			writeJSON(w, http.StatusNotFound, external.APIErrorResponse{Cod: "404", Message: "city not found"})
			return
		}
		if response, ok := s.current[key]; ok {
			writeJSON(w, http.StatusOK, response)
			return
		}
		writeJSON(w, http.StatusBadRequest, external.APIErrorResponse{Cod: "400", Message: fmt.Sprintf("no data for %s", key)})
	case "/data/2.5/forecast":
		if response, ok := s.forecasts[key]; ok {
			writeJSON(w, http.StatusOK, response)
			return
		}
		writeJSON(w, http.StatusBadRequest, external.APIErrorResponse{Cod: "400", Message: fmt.Sprintf("no data for %s", key)})
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// CurrentWeather builds a valid current weather payload.
func CurrentWeather(name, country string, lat, lon, tempKelvin float64) external.CurrentWeatherResponse {
	return external.CurrentWeatherResponse{
		Cod:     "200",
		Name:    name,
		Coord:   &external.CoordDTO{Lat: lat, Lon: lon},
		Weather: []external.ConditionDTO{{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"}},
		Main:    &external.MainDTO{Temp: tempKelvin, FeelsLike: tempKelvin - 1, Humidity: 60},
		Wind:    &external.WindDTO{Speed: 3.6},
		Sys:     &external.SysDTO{Country: country, Sunrise: 1700000000, Sunset: 1700030000},
	}
}

// ForecastItem builds one forecast step.
func ForecastItem(dt int64, tempKelvin float64, icon string) external.ForecastItemDTO {
	return external.ForecastItemDTO{
		Dt:      dt,
		Main:    &external.MainDTO{Temp: tempKelvin},
		Weather: []external.ConditionDTO{{Icon: icon}},
	}
}

// Forecast wraps items in a forecast payload.
func Forecast(items ...external.ForecastItemDTO) external.ForecastResponse {
	if items == nil {
		items = []external.ForecastItemDTO{}
	}
	return external.ForecastResponse{Cod: "200", Cnt: len(items), List: items}
}
