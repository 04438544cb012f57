package models

// ParkFactor is a scalar centered at 100 (neutral). It is applied at only half
// strength when projecting rates, since a player only plays half their games
// at home.
type ParkFactor int

const defaultParkFactor ParkFactor = 100

// DefaultParkFactor returns the neutral park factor.
func DefaultParkFactor() ParkFactor {
	return defaultParkFactor
}

// Validate checks the factor falls within the configured 50..150 range.
func (p ParkFactor) Validate() error {
	if p < 50 || p > 150 {
		return &InvalidConfigurationError{Field: "park_factor", Reason: "must be between 50 and 150"}
	}
	return nil
}

// HitTypeMultiplier returns the half-strength scaling applied to single,
// double, triple, and home-run rates: 1 + (factor-100)/200. Strikeouts, walks,
// and hit-by-pitch are never scaled by park factor.
func (p ParkFactor) HitTypeMultiplier() float64 {
	return 1.0 + (float64(p)-100.0)/200.0
}

// StadiumDimensions records a ballpark's physical outfield distances, used by
// a repository implementation to derive a composite ParkFactor rather than by
// the simulation core itself.
type StadiumDimensions struct {
	LeftField   int    `json:"left_field"`
	LeftCenter  int    `json:"left_center"`
	Center      int    `json:"center"`
	RightCenter int    `json:"right_center"`
	RightField  int    `json:"right_field"`
	AltitudeFt  int    `json:"altitude_ft"`
	Surface     string `json:"surface"` // "grass" or "turf"
}

// DefaultDimensions returns typical MLB field dimensions at sea level on grass.
func DefaultDimensions() StadiumDimensions {
	return StadiumDimensions{
		LeftField:   330,
		LeftCenter:  375,
		Center:      400,
		RightCenter: 375,
		RightField:  330,
		AltitudeFt:  500,
		Surface:     "grass",
	}
}

// AltitudeHRBoost returns the home-run-friendliness multiplier attributable to
// altitude alone, capped at a 20% boost the way Coors Field's effect is
// conventionally modeled: roughly 2% per thousand feet above 1000 feet.
func AltitudeHRBoost(altitudeFt int) float64 {
	if altitudeFt <= 1000 {
		return 1.0
	}
	boost := float64(altitudeFt-1000) / 1000.0 * 0.02
	if boost > 0.20 {
		boost = 0.20
	}
	return 1.0 + boost
}

// SurfaceHitBoost returns the boost turf gives groundball-derived hits
// relative to natural grass.
func SurfaceHitBoost(surface string) float64 {
	switch surface {
	case "turf", "artificial":
		return 1.03
	default:
		return 1.0
	}
}

// DeriveParkFactor folds altitude and surface effects into a single scalar
// ParkFactor centered at 100, suitable for storage alongside a team's season
// record and later application via HitTypeMultiplier. The outfield distances
// in d are not used.
func DeriveParkFactor(d StadiumDimensions) ParkFactor {
	composite := AltitudeHRBoost(d.AltitudeFt) * SurfaceHitBoost(d.Surface)
	factor := 100.0 * composite
	if factor < 50 {
		factor = 50
	}
	if factor > 150 {
		factor = 150
	}
	return ParkFactor(factor)
}
