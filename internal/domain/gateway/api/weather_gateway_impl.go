package api

import (
	"context"
	"errors"
	"strings"

	"weather-app/internal/domain/model/external"
	"weather-app/pkg/http"
	"weather-app/pkg/util/numberutils"
)

const (
	reversePath  = "/geo/1.0/reverse"
	weatherPath  = "/data/2.5/weather"
	forecastPath = "/data/2.5/forecast"
)

// validatable is implemented by payloads checked at the boundary
type validatable interface {
	Validate() error
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
}

// NewWeatherGateway creates a WeatherGateway that signs every call with apiKey
func NewWeatherGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	defaults := make(map[string]string, len(clientOptions.DefaultQueryParams)+1)
	for k, v := range clientOptions.DefaultQueryParams {
		defaults[k] = v
	}
	defaults["appid"] = apiKey
	clientOptions.DefaultQueryParams = defaults

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// ReverseGeocode maps a position to the nearest place
func (w *weatherGatewayImpl) ReverseGeocode(ctx context.Context, lat, lon float64) ([]external.GeocodeDTO, error) {
	var places []external.GeocodeDTO
	err := w.get(ctx, reversePath, map[string]string{
		"lat":   numberutils.FormatFloat(lat),
		"lon":   numberutils.FormatFloat(lon),
		"limit": "1",
	}, &places)
	if err != nil {
		return nil, err
	}
	if places == nil {
		return nil, &MalformedResponseError{Endpoint: reversePath, Err: errors.New("expected a JSON array")}
	}
	return places, nil
}

// CurrentWeatherByCoords gets current conditions for a position
func (w *weatherGatewayImpl) CurrentWeatherByCoords(ctx context.Context, lat, lon float64) (*external.CurrentWeatherResponse, error) {
	response := &external.CurrentWeatherResponse{}
	err := w.get(ctx, weatherPath, map[string]string{
		"lat": numberutils.FormatFloat(lat),
		"lon": numberutils.FormatFloat(lon),
	}, response)
	if err != nil {
		return nil, err
	}
	if err := validate(weatherPath, response); err != nil {
		return nil, err
	}
	return response, nil
}

// CurrentWeatherByName gets current conditions for a city name
func (w *weatherGatewayImpl) CurrentWeatherByName(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	response := &external.CurrentWeatherResponse{}
	err := w.get(ctx, weatherPath, map[string]string{"q": strings.TrimSpace(city)}, response)
	if err != nil {
		return nil, err
	}
	if response.Cod.IsNotFound() {
		return nil, ErrCityNotFound
	}
	if err := validate(weatherPath, response); err != nil {
		return nil, err
	}
	return response, nil
}

// ForecastByCoords gets the forecast feed for a position
func (w *weatherGatewayImpl) ForecastByCoords(ctx context.Context, lat, lon float64) (*external.ForecastResponse, error) {
	response := &external.ForecastResponse{}
	err := w.get(ctx, forecastPath, map[string]string{
		"lat": numberutils.FormatFloat(lat),
		"lon": numberutils.FormatFloat(lon),
	}, response)
	if err != nil {
		return nil, err
	}
	if err := validate(forecastPath, response); err != nil {
		return nil, err
	}
	return response, nil
}

// get executes a GET and decodes into target, mapping provider errors to typed ones.
func (w *weatherGatewayImpl) get(ctx context.Context, path string, query map[string]string, target any) error {
	_, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(query).
		WithSuccessResp(target).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		var decodeErr *http.DecodeError
		if errors.As(err, &decodeErr) {
			return &MalformedResponseError{Endpoint: path, Err: decodeErr.Err}
		}
		if errResp != nil {
			apiErr := errResp.(*external.APIErrorResponse)
			if apiErr.Cod.IsNotFound() && isCityLookup(path, query) {
				return ErrCityNotFound
			}
			return &ProviderError{Endpoint: path, StatusCode: status, Code: string(apiErr.Cod), Message: apiErr.Message}
		}
		return err
	}

	return nil
}

// isCityLookup reports whether the call searched current weather by city name
func isCityLookup(path string, query map[string]string) bool {
	return path == weatherPath && query["q"] != ""
}

// validate wraps a boundary validation failure in MalformedResponseError
func validate(path string, payload validatable) error {
	if err := payload.Validate(); err != nil {
		return &MalformedResponseError{Endpoint: path, Err: err}
	}
	return nil
}
