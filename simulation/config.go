package simulation

import "github.com/maulepilot117/atbatsim/models"

// Config bundles every knob the core recognizes. Defaults match the glossary;
// all of them are injectable so tests can pin distributions and so future
// validation work can retune the sub-decision rates without a code change.
type Config struct {
	ParkFactor                      models.ParkFactor
	MinPlateAppearancesForDirect    int
	StrikeoutSwingingShare          float64
	InfieldSingleShare              float64
	OutTypeDistribution             OutTypeDistribution
	ErrorRateOnInPlayOut            float64
	GIDPRateOnGroundoutWhenEligible float64
	SacFlyRateOnFlyoutWhenEligible  float64
}

// OutTypeDistribution partitions in-play outs among the four batted-ball out
// types. The four shares must sum to 1.
type OutTypeDistribution struct {
	Groundout float64
	Flyout    float64
	Lineout   float64
	Popup     float64
}

// DefaultConfig returns the glossary's documented defaults.
func DefaultConfig() Config {
	return Config{
		ParkFactor:                   models.DefaultParkFactor(),
		MinPlateAppearancesForDirect: 50,
		StrikeoutSwingingShare:       0.70,
		InfieldSingleShare:           0.15,
		OutTypeDistribution: OutTypeDistribution{
			Groundout: 0.44,
			Flyout:    0.28,
			Lineout:   0.21,
			Popup:     0.07,
		},
		ErrorRateOnInPlayOut:            0.02,
		GIDPRateOnGroundoutWhenEligible: 0.15,
		SacFlyRateOnFlyoutWhenEligible:  0.20,
	}
}

// Validate checks every knob is within its documented range.
func (c Config) Validate() error {
	if err := c.ParkFactor.Validate(); err != nil {
		return err
	}
	if c.MinPlateAppearancesForDirect < 0 {
		return &models.InvalidConfigurationError{Field: "min_plate_appearances_for_direct_rates", Reason: "must be non-negative"}
	}
	if err := fractionInUnitInterval("strikeout_swinging_share", c.StrikeoutSwingingShare); err != nil {
		return err
	}
	if err := fractionInUnitInterval("infield_single_share", c.InfieldSingleShare); err != nil {
		return err
	}
	if err := fractionInUnitInterval("error_rate_on_in_play_out", c.ErrorRateOnInPlayOut); err != nil {
		return err
	}
	if err := fractionInUnitInterval("gidp_rate_on_groundout_when_eligible", c.GIDPRateOnGroundoutWhenEligible); err != nil {
		return err
	}
	if err := fractionInUnitInterval("sac_fly_rate_on_flyout_when_eligible", c.SacFlyRateOnFlyoutWhenEligible); err != nil {
		return err
	}
	sum := c.OutTypeDistribution.Groundout + c.OutTypeDistribution.Flyout + c.OutTypeDistribution.Lineout + c.OutTypeDistribution.Popup
	if diff := sum - 1.0; diff < -1e-9 || diff > 1e-9 {
		return &models.InvalidConfigurationError{Field: "out_type_distribution", Reason: "must sum to 1"}
	}
	return nil
}

func fractionInUnitInterval(field string, v float64) error {
	if v < 0 || v > 1 {
		return &models.InvalidConfigurationError{Field: field, Reason: "must be in [0,1]"}
	}
	return nil
}
