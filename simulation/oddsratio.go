package simulation

import "github.com/maulepilot117/atbatsim/models"

// probabilityToOdds converts a probability to odds: p/(1-p).
func probabilityToOdds(p float64) float64 {
	if p >= 1.0 {
		return 1e18
	}
	return p / (1.0 - p)
}

// oddsToProbability inverts probabilityToOdds: odds/(1+odds).
func oddsToProbability(odds float64) float64 {
	return odds / (1.0 + odds)
}

// CombineOdds combines a batter probability and a pitcher probability against
// a league-average anchor for a single event, via the odds-ratio method:
//
//	matchup_odds = batter_odds * pitcher_odds / league_odds
//	matchup_p    = matchup_odds / (1 + matchup_odds)
//
// league must lie strictly in (0,1); batter and pitcher handle their 0/1
// boundary cases directly so the result never divides by zero, and a side
// equal to league returns the other side exactly.
func CombineOdds(batter, pitcher, league float64) (float64, error) {
	if league <= 0 || league >= 1 {
		return 0, &models.InvalidProbabilityInputError{Input: "league", Value: league}
	}
	if batter < 0 || batter > 1 {
		return 0, &models.InvalidProbabilityInputError{Input: "batter", Value: batter}
	}
	if pitcher < 0 || pitcher > 1 {
		return 0, &models.InvalidProbabilityInputError{Input: "pitcher", Value: pitcher}
	}

	if batter == 0 || pitcher == 0 {
		return 0, nil
	}
	if batter == 1 || pitcher == 1 {
		return 1, nil
	}
	if pitcher == league {
		return batter, nil
	}
	if batter == league {
		return pitcher, nil
	}

	batterOdds := probabilityToOdds(batter)
	pitcherOdds := probabilityToOdds(pitcher)
	leagueOdds := probabilityToOdds(league)

	matchupOdds := batterOdds * pitcherOdds / leagueOdds
	return oddsToProbability(matchupOdds), nil
}

// eventList is the fixed, ordered event set E the combiner and resolver work over.
var eventList = []string{"strikeout", "walk", "hit_by_pitch", "single", "double", "triple", "home_run"}

func eventRate(r models.EventRates, event string) float64 {
	switch event {
	case "strikeout":
		return r.Strikeout
	case "walk":
		return r.Walk
	case "hit_by_pitch":
		return r.HitByPitch
	case "single":
		return r.Single
	case "double":
		return r.Double
	case "triple":
		return r.Triple
	case "home_run":
		return r.HomeRun
	}
	return 0
}

func setEventRate(r *models.EventRates, event string, v float64) {
	switch event {
	case "strikeout":
		r.Strikeout = v
	case "walk":
		r.Walk = v
	case "hit_by_pitch":
		r.HitByPitch = v
	case "single":
		r.Single = v
	case "double":
		r.Double = v
	case "triple":
		r.Triple = v
	case "home_run":
		r.HomeRun = v
	}
}

// CombineMatchup applies CombineOdds event-by-event across E and returns an
// UNNORMALIZED EventRates. The residual 1-Σ is the in-play-out mass and must
// never be redistributed across the other events; doing so would silently
// inflate every hit type.
func CombineMatchup(batter, pitcher, league models.EventRates) (models.EventRates, error) {
	var out models.EventRates
	for _, event := range eventList {
		combined, err := CombineOdds(eventRate(batter, event), eventRate(pitcher, event), eventRate(league, event))
		if err != nil {
			return models.EventRates{}, err
		}
		setEventRate(&out, event, combined)
	}
	return out, nil
}
