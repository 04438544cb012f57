package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maulepilot117/atbatsim/models"
)

// fakeRepository counts calls so tests can assert the cache actually avoids
// hitting the backing store on a repeat lookup.
type fakeRepository struct {
	batterCalls  int
	pitcherCalls int
	rosterCalls  int
	parkCalls    int
}

func (f *fakeRepository) GetBatterSeason(ctx context.Context, playerID string, year int) (*models.BattingStatLine, error) {
	f.batterCalls++
	return &models.BattingStatLine{PlayerID: playerID, Year: year, AtBats: 500, Hits: 140}, nil
}

func (f *fakeRepository) GetPitcherSeason(ctx context.Context, playerID string, year int) (*models.PitchingStatLine, error) {
	f.pitcherCalls++
	return &models.PitchingStatLine{PlayerID: playerID, Year: year, BattersFaced: 700}, nil
}

func (f *fakeRepository) GetTeamRoster(ctx context.Context, teamID string, year int) ([]string, error) {
	f.rosterCalls++
	return []string{"p1", "p2"}, nil
}

func (f *fakeRepository) GetTeamParkFactor(ctx context.Context, teamID string, year int) (models.ParkFactor, error) {
	f.parkCalls++
	return models.ParkFactor(105), nil
}

func TestCachingRepositoryReturnsSameValueOnRepeatedLookup(t *testing.T) {
	fake := &fakeRepository{}
	cache := NewCachingRepository(fake, time.Minute)

	ctx := context.Background()
	first, err := cache.GetBatterSeason(ctx, "ruth01", 1927)
	require.NoError(t, err)
	second, err := cache.GetBatterSeason(ctx, "ruth01", 1927)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fake.batterCalls, "second lookup should be served from cache")
}

func TestCachingRepositoryMissesOnDifferentKey(t *testing.T) {
	fake := &fakeRepository{}
	cache := NewCachingRepository(fake, time.Minute)
	ctx := context.Background()

	_, err := cache.GetPitcherSeason(ctx, "young01", 1905)
	require.NoError(t, err)
	_, err = cache.GetPitcherSeason(ctx, "young01", 1906)
	require.NoError(t, err)

	assert.Equal(t, 2, fake.pitcherCalls)
}

func TestCachingRepositoryExpiresEntries(t *testing.T) {
	fake := &fakeRepository{}
	cache := NewCachingRepository(fake, time.Millisecond)
	ctx := context.Background()

	_, err := cache.GetTeamRoster(ctx, "NYA", 1927)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = cache.GetTeamRoster(ctx, "NYA", 1927)
	require.NoError(t, err)

	assert.Equal(t, 2, fake.rosterCalls, "expired entry should trigger a fresh lookup")
}

func TestCachingRepositoryTracksHitsAndMisses(t *testing.T) {
	fake := &fakeRepository{}
	cache := NewCachingRepository(fake, time.Minute)
	ctx := context.Background()

	_, _ = cache.GetTeamParkFactor(ctx, "COL", 2020)
	_, _ = cache.GetTeamParkFactor(ctx, "COL", 2020)

	hits, misses := cache.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}
