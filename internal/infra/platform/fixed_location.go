package platform

import (
	"context"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/platform"
)

// FixedLocationService reports a position supplied by the client, an HTTP body or CLI flags.
type FixedLocationService struct {
	coords entity.Coordinates
	denied bool
}

// NewFixedLocationService creates a service that always reports coords.
// When denied is set every permission request is refused.
func NewFixedLocationService(coords entity.Coordinates, denied bool) *FixedLocationService {
	return &FixedLocationService{coords: coords, denied: denied}
}

func (f *FixedLocationService) RequestForegroundPermission(ctx context.Context) (platform.PermissionStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.denied {
		return platform.PermissionDenied, nil
	}
	return platform.PermissionGranted, nil
}

func (f *FixedLocationService) CurrentPosition(ctx context.Context) (entity.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinates{}, err
	}
	if f.denied {
		return entity.Coordinates{}, platform.ErrPermissionDenied
	}
	return f.coords, nil
}
