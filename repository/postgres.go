package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maulepilot117/atbatsim/models"
)

var (
	_ Repository = (*PostgresRepository)(nil)
	_ Repository = (*CachingRepository)(nil)
)

// PostgresRepository is a pgx-backed Repository implementation. It owns its
// connection pool and is safe for concurrent use across goroutines; the
// simulation core's RandomSource, by contrast, keeps a reproducible draw
// order only while one goroutine owns it.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// PostgresConfig bundles the connection parameters a deployment supplies via
// environment variables, mirroring sim-engine/main.go's Config shape.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	// PoolSize sizes MaxConns; MinConns is half of it.
	PoolSize int
}

// NewPostgresRepository parses cfg into a DSN, opens a pool sized per
// PoolSize, and verifies connectivity with a ping before returning.
func NewPostgresRepository(ctx context.Context, cfg PostgresConfig) (*PostgresRepository, error) {
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 4
	}
	poolConfig.MaxConns = int32(cfg.PoolSize)
	poolConfig.MinConns = int32(cfg.PoolSize / 2)
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (r *PostgresRepository) Close() {
	r.pool.Close()
}

// GetBatterSeason loads one player-year's batting counting stats.
func (r *PostgresRepository) GetBatterSeason(ctx context.Context, playerID string, year int) (*models.BattingStatLine, error) {
	const query = `
		SELECT player_id, season, at_bats, hits, doubles, triples, home_runs,
		       walks, strikeouts, hit_by_pitch, sacrifice_flies
		FROM season_batting_stats
		WHERE player_id = $1 AND season = $2
	`

	var line models.BattingStatLine
	err := r.pool.QueryRow(ctx, query, playerID, year).Scan(
		&line.PlayerID, &line.Year, &line.AtBats, &line.Hits, &line.Doubles,
		&line.Triples, &line.HomeRuns, &line.Walks, &line.Strikeouts,
		&line.HitByPitch, &line.SacrificeFlies,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query batter season %s/%d: %w", playerID, year, err)
	}
	return &line, nil
}

// GetPitcherSeason loads one pitcher-year's counting stats allowed, including
// the extra-base breakdown when the source data tracked it.
func (r *PostgresRepository) GetPitcherSeason(ctx context.Context, playerID string, year int) (*models.PitchingStatLine, error) {
	const query = `
		SELECT player_id, season, batters_faced, hits_allowed, doubles_allowed,
		       triples_allowed, home_runs_allowed, walks_allowed, strikeouts,
		       hit_batters
		FROM season_pitching_stats
		WHERE player_id = $1 AND season = $2
	`

	var line models.PitchingStatLine
	err := r.pool.QueryRow(ctx, query, playerID, year).Scan(
		&line.PlayerID, &line.Year, &line.BattersFaced, &line.HitsAllowed,
		&line.DoublesAllowed, &line.TriplesAllowed, &line.HomeRunsAllowed,
		&line.WalksAllowed, &line.Strikeouts, &line.HitBatters,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query pitcher season %s/%d: %w", playerID, year, err)
	}
	return &line, nil
}

// GetTeamRoster returns the player IDs on a team's active roster for year.
// Lineup order, fielding position, and scouting attributes are a game-loop
// concern and intentionally not modeled here.
func (r *PostgresRepository) GetTeamRoster(ctx context.Context, teamID string, year int) ([]string, error) {
	const query = `
		SELECT player_id
		FROM rosters
		WHERE team_id = $1 AND season = $2
		ORDER BY player_id
	`

	rows, err := r.pool.Query(ctx, query, teamID, year)
	if err != nil {
		return nil, fmt.Errorf("query roster %s/%d: %w", teamID, year, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan roster row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roster rows: %w", err)
	}
	if len(ids) == 0 {
		return nil, ErrNotFound
	}
	return ids, nil
}

// GetTeamParkFactor returns a team's home park factor for year, falling back
// to a dimensions-derived factor when no stored scalar exists, and to
// neutral (100) when neither is available.
func (r *PostgresRepository) GetTeamParkFactor(ctx context.Context, teamID string, year int) (models.ParkFactor, error) {
	const query = `
		SELECT park_factor, left_field, left_center, center, right_center,
		       right_field, altitude_ft, surface
		FROM parks
		WHERE team_id = $1 AND season = $2
	`

	var (
		storedFactor *int
		dims         models.StadiumDimensions
		surface      *string
	)
	err := r.pool.QueryRow(ctx, query, teamID, year).Scan(
		&storedFactor, &dims.LeftField, &dims.LeftCenter, &dims.Center,
		&dims.RightCenter, &dims.RightField, &dims.AltitudeFt, &surface,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.DefaultParkFactor(), nil
	}
	if err != nil {
		return 0, fmt.Errorf("query park factor %s/%d: %w", teamID, year, err)
	}

	if storedFactor != nil {
		return models.ParkFactor(*storedFactor), nil
	}
	if surface != nil {
		dims.Surface = *surface
	}
	return models.DeriveParkFactor(dims), nil
}
