package entity

const (
	DefaultLatitudeDelta  = 0.0922
	DefaultLongitudeDelta = 0.0421
)

// MapRegion is the visible area of the embedded map.
type MapRegion struct {
	Center         Coordinates `json:"center"`
	LatitudeDelta  float64     `json:"latitudeDelta"`
	LongitudeDelta float64     `json:"longitudeDelta"`
}

// MapMarker is the single pin drawn on the map.
type MapMarker struct {
	Coords Coordinates `json:"coords"`
	Title  string      `json:"title"`
}

// NewMapRegion centers a region with the default zoom deltas.
func NewMapRegion(center Coordinates) MapRegion {
	return MapRegion{
		Center:         center,
		LatitudeDelta:  DefaultLatitudeDelta,
		LongitudeDelta: DefaultLongitudeDelta,
	}
}
