package models

import "fmt"

// InvalidStatLineError indicates a batting or pitching stat line failed validation,
// such as negative counts or hits that exceed at-bats.
type InvalidStatLineError struct {
	Field  string
	Reason string
}

func (e *InvalidStatLineError) Error() string {
	return fmt.Sprintf("invalid stat line field %q: %s", e.Field, e.Reason)
}

// InvalidLeagueBaselineError indicates an embedded league baseline failed
// validation: an event probability (Event set) or the era's residual out rate
// (Event empty) lies outside (0,1).
type InvalidLeagueBaselineError struct {
	Era   string
	Event string
}

func (e *InvalidLeagueBaselineError) Error() string {
	if e.Event != "" {
		return fmt.Sprintf("league baseline for event %q in era %q is outside (0,1)", e.Event, e.Era)
	}
	return fmt.Sprintf("league baseline residual out rate for era %q is outside (0,1)", e.Era)
}

// InvalidProbabilityInputError indicates a probability combination received a value
// outside its required domain, most commonly a league rate not strictly between 0 and 1.
type InvalidProbabilityInputError struct {
	Input string
	Value float64
}

func (e *InvalidProbabilityInputError) Error() string {
	return fmt.Sprintf("invalid probability input %q: %v", e.Input, e.Value)
}

// InvalidConfigurationError indicates an engine Config field is out of its allowed range.
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration field %q: %s", e.Field, e.Reason)
}

// EmptyWeightedChoiceError indicates weighted_choice was called with no options.
type EmptyWeightedChoiceError struct{}

func (e *EmptyWeightedChoiceError) Error() string {
	return "weighted choice called with no options"
}

// InvalidAdvancementMatrixError indicates an advancement matrix row set does not
// sum to 1 within tolerance, or references a base state the matrix does not cover.
type InvalidAdvancementMatrixError struct {
	Outcome string
	Reason  string
}

func (e *InvalidAdvancementMatrixError) Error() string {
	return fmt.Sprintf("invalid advancement matrix for outcome %q: %s", e.Outcome, e.Reason)
}
