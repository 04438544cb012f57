// Package repository defines the data-access collaborator the simulation
// core consumes but never imports: a read-only lookup of seasonal batting,
// pitching, roster, and park-factor data keyed by player, team, and year.
package repository

import (
	"context"
	"errors"

	"github.com/maulepilot117/atbatsim/models"
)

// ErrNotFound is returned when a season or team has no matching row. httpapi
// answers a missing batter or pitcher season with 404 Not Found, and keeps its
// configured park factor when a team's park factor is missing.
var ErrNotFound = errors.New("repository: not found")

// Repository is the narrow interface simulation/ and httpapi/ depend on.
// PostgresRepository is the production implementation; tests substitute an
// in-memory fake.
type Repository interface {
	GetBatterSeason(ctx context.Context, playerID string, year int) (*models.BattingStatLine, error)
	GetPitcherSeason(ctx context.Context, playerID string, year int) (*models.PitchingStatLine, error)
	GetTeamRoster(ctx context.Context, teamID string, year int) ([]string, error)
	GetTeamParkFactor(ctx context.Context, teamID string, year int) (models.ParkFactor, error)
}
