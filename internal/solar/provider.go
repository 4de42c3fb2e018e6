package solar

import (
	"context"
	"fmt"
	"math"
)

// HoursPerYear is the length of every resource profile.
const HoursPerYear = 8760

// ResourceProfile is one year of hourly AC output normalized to 1 MW-DC.
type ResourceProfile struct {
	// Hourly holds the normalized output for each hour of the year,
	// values in [0, 1].
	Hourly []float64
}

// Provider fetches the resource profile for a location. Implementations
// must be deterministic: the same coordinates always yield the same
// profile.
type Provider interface {
	Profile(ctx context.Context, latitude, longitude float64) (*ResourceProfile, error)
}

// ClearSkyProvider synthesizes a typical-year profile from solar geometry:
// declination, hour angle, and elevation with a simple air-mass
// attenuation. It is pure computation and safe for concurrent use.
type ClearSkyProvider struct{}

// NewClearSkyProvider returns a ClearSkyProvider.
func NewClearSkyProvider() *ClearSkyProvider {
	return &ClearSkyProvider{}
}

// Profile computes the normalized hourly AC output for the location.
func (p *ClearSkyProvider) Profile(_ context.Context, latitude, longitude float64) (*ResourceProfile, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("coordinates out of range: (%g, %g)", latitude, longitude)
	}

	latRad := latitude * math.Pi / 180
	// Offset of true solar noon from the nearest whole-hour meridian.
	noonShift := longitude/15 - math.Round(longitude/15)

	hourly := make([]float64, HoursPerYear)
	for h := 0; h < HoursPerYear; h++ {
		day := float64(h/24 + 1)
		hourOfDay := float64(h % 24)

		// Solar declination (Cooper's equation), in radians.
		decl := 23.45 * math.Pi / 180 * math.Sin(2*math.Pi*(284+day)/365)

		// Hour angle: 15 degrees per hour from solar noon.
		hourAngle := 15 * (hourOfDay + noonShift - 12) * math.Pi / 180

		sinElev := math.Sin(latRad)*math.Sin(decl) + math.Cos(latRad)*math.Cos(decl)*math.Cos(hourAngle)
		if sinElev <= 0 {
			continue
		}

		// Meinel clear-sky attenuation through air mass.
		airMass := 1 / sinElev
		irradiance := 1.05 * sinElev * math.Pow(0.7, math.Pow(airMass, 0.678))
		hourly[h] = math.Min(irradiance, 1)
	}

	return &ResourceProfile{Hourly: hourly}, nil
}
