package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/maulepilot117/atbatsim/httpapi"
	"github.com/maulepilot117/atbatsim/repository"
	"github.com/maulepilot117/atbatsim/simulation"
)

// serveCmd starts the HTTP façade, wiring a PostgresRepository (wrapped in
// a CachingRepository) into an httpapi.Server, matching sim-engine/main.go's
// NewConfig/NewServer/Start/Shutdown sequence.
func serveCmd() *cobra.Command {
	var (
		port       string
		cacheTTL   time.Duration
		rateLimit  float64
		rateBurst  int
		corsOrigin []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the at-bat simulator as an HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			workers := runtime.NumCPU()

			pgCfg := repository.PostgresConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnv("DB_PORT", "5432"),
				User:     getEnv("DB_USER", "atbatsim"),
				Password: getEnv("DB_PASSWORD", "atbatsim"),
				Database: getEnv("DB_NAME", "atbatsim"),
				PoolSize: workers * 2,
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			pg, err := repository.NewPostgresRepository(ctx, pgCfg)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pg.Close()

			repo := repository.NewCachingRepository(pg, cacheTTL)

			srv := httpapi.NewServer(httpapi.Options{
				Repo:               repo,
				Config:             simulation.DefaultConfig(),
				RateLimitPerSecond: rateLimit,
				RateLimitBurst:     rateBurst,
				AllowedOrigins:     corsOrigin,
			})

			go func() {
				<-ctx.Done()
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer shutdownCancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					log.Println("server shutdown failed:", err)
				}
			}()

			log.Println("atbatsim listening on :" + port)
			if err := srv.ListenAndServe(":" + port); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("server failed: %w", err)
			}
			log.Println("server shutdown complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", getEnv("PORT", "8081"), "HTTP listen port")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 15*time.Minute, "Repository cache entry lifetime")
	cmd.Flags().Float64Var(&rateLimit, "rate-limit", 20, "Requests per second allowed per client")
	cmd.Flags().IntVar(&rateBurst, "rate-burst", 10, "Burst size for the per-client rate limiter")
	cmd.Flags().StringSliceVar(&corsOrigin, "cors-origin", []string{"*"}, "Allowed CORS origins")

	return cmd
}
