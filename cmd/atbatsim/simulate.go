package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maulepilot117/atbatsim/models"
	"github.com/maulepilot117/atbatsim/simulation"
)

// simulateCmd runs N plate appearances against stat lines supplied directly
// as flags, with no database required — usable headlessly for quick
// matchup checks or scripted batch runs.
func simulateCmd() *cobra.Command {
	var (
		batterAtBats     int
		batterHits       int
		batterDoubles    int
		batterTriples    int
		batterHomeRuns   int
		batterWalks      int
		batterStrikeouts int

		pitcherFaced      int
		pitcherHits       int
		pitcherHomeRuns   int
		pitcherWalks      int
		pitcherStrikeouts int

		year  int
		count int
		seed1 uint64
		seed2 uint64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate plate appearances for one batter/pitcher matchup",
		RunE: func(cmd *cobra.Command, args []string) error {
			batter := models.BattingStatLine{
				PlayerID: "cli-batter", Year: year,
				AtBats: batterAtBats, Hits: batterHits, Doubles: batterDoubles,
				Triples: batterTriples, HomeRuns: batterHomeRuns,
				Walks: batterWalks, Strikeouts: batterStrikeouts,
			}
			pitcher := models.PitchingStatLine{
				PlayerID: "cli-pitcher", Year: year,
				BattersFaced: pitcherFaced, HitsAllowed: pitcherHits,
				HomeRunsAllowed: pitcherHomeRuns, WalksAllowed: pitcherWalks,
				Strikeouts: pitcherStrikeouts,
			}

			rng := simulation.NewSeededRandomSource(seed1, seed2)
			baselines := models.NewLeagueBaselines()
			engine, err := simulation.NewSimulationEngine(rng, baselines, simulation.DefaultConfig())
			if err != nil {
				return fmt.Errorf("build simulation engine: %w", err)
			}

			tally := map[models.AtBatOutcome]int{}
			for i := 0; i < count; i++ {
				result, err := engine.SimulateAtBat(batter, pitcher, year, models.EmptyBases, 0)
				if err != nil {
					return fmt.Errorf("plate appearance %d: %w", i, err)
				}
				tally[result.Outcome]++
			}

			fmt.Printf("simulated %d plate appearances (seed=%d,%d)\n", count, seed1, seed2)
			for outcome, n := range tally {
				fmt.Printf("  %-20s %5d  (%.3f)\n", outcome.String(), n, float64(n)/float64(count))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&batterAtBats, "batter-ab", 550, "Batter at-bats")
	cmd.Flags().IntVar(&batterHits, "batter-hits", 160, "Batter hits")
	cmd.Flags().IntVar(&batterDoubles, "batter-doubles", 30, "Batter doubles")
	cmd.Flags().IntVar(&batterTriples, "batter-triples", 4, "Batter triples")
	cmd.Flags().IntVar(&batterHomeRuns, "batter-hr", 20, "Batter home runs")
	cmd.Flags().IntVar(&batterWalks, "batter-bb", 60, "Batter walks")
	cmd.Flags().IntVar(&batterStrikeouts, "batter-so", 110, "Batter strikeouts")

	cmd.Flags().IntVar(&pitcherFaced, "pitcher-bf", 800, "Pitcher batters faced")
	cmd.Flags().IntVar(&pitcherHits, "pitcher-hits", 190, "Pitcher hits allowed")
	cmd.Flags().IntVar(&pitcherHomeRuns, "pitcher-hr", 18, "Pitcher home runs allowed")
	cmd.Flags().IntVar(&pitcherWalks, "pitcher-bb", 70, "Pitcher walks allowed")
	cmd.Flags().IntVar(&pitcherStrikeouts, "pitcher-so", 180, "Pitcher strikeouts")

	cmd.Flags().IntVar(&year, "year", 2023, "Season year for era-based projection")
	cmd.Flags().IntVar(&count, "count", 1000, "Number of plate appearances to simulate")
	cmd.Flags().Uint64Var(&seed1, "seed1", 1, "First half of the PCG seed")
	cmd.Flags().Uint64Var(&seed2, "seed2", 2, "Second half of the PCG seed")

	return cmd
}
