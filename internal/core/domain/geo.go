package domain

import (
	"strconv"
	"strings"

	"github.com/dmaia/sweetshop/internal/core/serviceerrors"
)

// Earth radii used to convert a surface distance into the angular radius
// that $centerSphere expects.
const (
	EarthRadiusMiles      = 3963.2
	EarthRadiusKilometers = 6378.1

	metersPerMile      = 0.000621371
	metersPerKilometer = 0.001
)

// ParseLatLng parses a "lat,lng" pair. Both components must be present and
// numeric; anything else is rejected before a query is ever built.
func ParseLatLng(latlng string) (lat, lng float64, err error) {
	parts := strings.Split(latlng, ",")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return 0, 0, serviceerrors.NewInvalidRequestError("please provide latitude and longitude in the format lat,lng")
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, serviceerrors.NewInvalidRequestError("latitude must be numeric")
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, serviceerrors.NewInvalidRequestError("longitude must be numeric")
	}
	return lat, lng, nil
}

// AngularRadius converts a distance in the given unit ("mi", anything else
// means kilometers) to radians.
func AngularRadius(distance float64, unit string) float64 {
	if unit == "mi" {
		return distance / EarthRadiusMiles
	}
	return distance / EarthRadiusKilometers
}

// DistanceMultiplier scales the meter distances $geoNear computes into the
// requested unit.
func DistanceMultiplier(unit string) float64 {
	if unit == "mi" {
		return metersPerMile
	}
	return metersPerKilometer
}
