package platform

import (
	"context"
	"errors"

	"weather-app/internal/domain/entity"
)

// PermissionStatus is the answer to a foreground location permission request
type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
)

// ErrPermissionDenied is returned when a position is read without permission
var ErrPermissionDenied = errors.New("location permission denied")

// LocationService abstracts the device's location provider
type LocationService interface {
	// RequestForegroundPermission asks the user for location access while the app is in use
	RequestForegroundPermission(ctx context.Context) (PermissionStatus, error)

	// CurrentPosition reads the device's current coordinates
	CurrentPosition(ctx context.Context) (entity.Coordinates, error)
}
