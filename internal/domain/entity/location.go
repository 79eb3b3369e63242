package entity

// Coordinates is a geographic position in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is the payload handed from the home screen to the weather screen.
type Location struct {
	Coords Coordinates `json:"coords"`
}

// NewLocation builds a Location from a latitude/longitude pair.
func NewLocation(latitude, longitude float64) Location {
	return Location{Coords: Coordinates{Latitude: latitude, Longitude: longitude}}
}

// SearchedLocation is the display-only record shown in the home screen table.
// Coordinates stay nil until a position is known.
type SearchedLocation struct {
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Coordinates returns the displayed position, or false when it is not known yet.
func (s SearchedLocation) Coordinates() (Coordinates, bool) {
	if s.Latitude == nil || s.Longitude == nil {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: *s.Latitude, Longitude: *s.Longitude}, true
}

// WithCoordinates returns a copy with latitude and longitude set.
func (s SearchedLocation) WithCoordinates(coords Coordinates) SearchedLocation {
	lat, lon := coords.Latitude, coords.Longitude
	s.Latitude = &lat
	s.Longitude = &lon
	return s
}
