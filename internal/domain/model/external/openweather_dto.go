package external

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ResponseCode is the provider's "cod" field, sent as a number on success
// and as a string on errors ("404").
type ResponseCode string

func (c *ResponseCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = ResponseCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cod must be a string or a number: %w", err)
	}
	*c = ResponseCode(n.String())
	return nil
}

// IsNotFound reports the provider's "city not found" code.
func (c ResponseCode) IsNotFound() bool {
	return c == "404"
}

// CoordDTO is the "coord" object of the current weather payload
type CoordDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ConditionDTO is one element of the "weather" array
type ConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO holds temperatures in Kelvin and relative humidity
type MainDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

// WindDTO holds wind speed in m/s
type WindDTO struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// SysDTO holds country and sun times in unix seconds
type SysDTO struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// CurrentWeatherResponse is returned by /data/2.5/weather
type CurrentWeatherResponse struct {
	Cod     ResponseCode   `json:"cod"`
	Name    string         `json:"name"`
	Dt      int64          `json:"dt"`
	Coord   *CoordDTO      `json:"coord"`
	Weather []ConditionDTO `json:"weather"`
	Main    *MainDTO       `json:"main"`
	Wind    *WindDTO       `json:"wind"`
	Sys     *SysDTO        `json:"sys"`
}

// Validate checks the fields the screens read.
func (r *CurrentWeatherResponse) Validate() error {
	var errs []error
	if r.Coord == nil {
		errs = append(errs, errors.New("coord is missing"))
	}
	if r.Main == nil {
		errs = append(errs, errors.New("main is missing"))
	}
	if r.Wind == nil {
		errs = append(errs, errors.New("wind is missing"))
	}
	if r.Sys == nil {
		errs = append(errs, errors.New("sys is missing"))
	}
	if len(r.Weather) == 0 {
		errs = append(errs, errors.New("weather is empty"))
	}
	return errors.Join(errs...)
}

// ForecastItemDTO is one element of the forecast "list"
type ForecastItemDTO struct {
	Dt      int64          `json:"dt"`
	Main    *MainDTO       `json:"main"`
	Weather []ConditionDTO `json:"weather"`
	DtTxt   string         `json:"dt_txt"`
}

// Icon returns the first condition's icon code, or "" when there is none.
func (i ForecastItemDTO) Icon() string {
	if len(i.Weather) == 0 {
		return ""
	}
	return i.Weather[0].Icon
}

// ForecastResponse is returned by /data/2.5/forecast
type ForecastResponse struct {
	Cod  ResponseCode      `json:"cod"`
	Cnt  int               `json:"cnt"`
	List []ForecastItemDTO `json:"list"`
}

// Validate requires the list to be present and every entry to carry a timestamp and temperatures.
func (r *ForecastResponse) Validate() error {
	if r.List == nil {
		return errors.New("list is missing")
	}
	var errs []error
	for i, item := range r.List {
		if item.Dt <= 0 {
			errs = append(errs, errors.New("list["+strconv.Itoa(i)+"].dt is missing"))
		}
		if item.Main == nil {
			errs = append(errs, errors.New("list["+strconv.Itoa(i)+"].main is missing"))
		}
	}
	return errors.Join(errs...)
}

// GeocodeDTO is one element of the /geo/1.0/reverse array
type GeocodeDTO struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// APIErrorResponse represents error responses from the provider
type APIErrorResponse struct {
	Cod     ResponseCode `json:"cod"`
	Message string       `json:"message"`
}
