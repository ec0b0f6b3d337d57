package policy

import (
	"math"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/utils"
)

// ValidateLocation enforces the office geofence. It is a no-op when the
// organization has no office coordinates configured.
func (s Settings) ValidateLocation(loc *Location) error {
	if !s.HasOfficeLocation() {
		return nil
	}
	if loc == nil {
		return ErrLocationRequired
	}

	office := s.OfficeLocation
	radius := office.Radius
	if radius <= 0 {
		radius = DefaultRadiusMeters
	}

	distance := utils.CalculateHaversineDistance(*office.Latitude, *office.Longitude, loc.Latitude, loc.Longitude)
	if distance > radius {
		return apperror.Wrapf(ErrGeofenceViolation,
			"you are %dm away from the office, allowed radius is %dm",
			int(math.Round(distance)), int(math.Round(radius)))
	}
	return nil
}
