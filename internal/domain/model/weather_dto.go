package model

import (
	"errors"
	"math"

	"weather-app/internal/domain/entity"
)

// CoordinatesDTO is a position sent by the client
type CoordinatesDTO struct {
	Latitude  *float64 `json:"latitude" example:"51.5"`
	Longitude *float64 `json:"longitude" example:"-0.12"`
}

// Validate requires both coordinates within their ranges
func (c CoordinatesDTO) Validate() error {
	if c.Latitude == nil || c.Longitude == nil {
		return errors.New("latitude and longitude are required")
	}
	if math.IsNaN(*c.Latitude) || *c.Latitude < -90 || *c.Latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if math.IsNaN(*c.Longitude) || *c.Longitude < -180 || *c.Longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// Location converts a validated DTO into the navigation payload
func (c CoordinatesDTO) Location() entity.Location {
	return entity.NewLocation(*c.Latitude, *c.Longitude)
}

// MountHomeDTO carries what the device's location service would report
type MountHomeDTO struct {
	CoordinatesDTO
	PermissionDenied bool `json:"permissionDenied"`
}

// Validate accepts missing coordinates only when permission is denied
func (m MountHomeDTO) Validate() error {
	if m.PermissionDenied {
		return nil
	}
	return m.CoordinatesDTO.Validate()
}

// Coordinates returns the reported position, zero when permission is denied
func (m MountHomeDTO) Coordinates() entity.Coordinates {
	if m.Latitude == nil || m.Longitude == nil {
		return entity.Coordinates{}
	}
	return entity.Coordinates{Latitude: *m.Latitude, Longitude: *m.Longitude}
}

// SearchDTO is the free text typed in a search box
type SearchDTO struct {
	City string `json:"city" example:"London"`
}
