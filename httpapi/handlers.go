package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/maulepilot117/atbatsim/models"
	"github.com/maulepilot117/atbatsim/repository"
	"github.com/maulepilot117/atbatsim/simulation"
)

// writeJSON writes v as a JSON response body, matching
// api-gateway/helpers.go's writeJSON helper.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "healthy"})
}

// simulateRequest is the wire shape of POST /simulate: enough to run exactly
// one plate appearance through the core.
type simulateRequest struct {
	BatterID  string `json:"batter_id"`
	PitcherID string `json:"pitcher_id"`
	Year      int    `json:"year"`
	TeamID    string `json:"team_id"`
	BaseState struct {
		First  bool `json:"first"`
		Second bool `json:"second"`
		Third  bool `json:"third"`
	} `json:"base_state"`
	PriorOuts int    `json:"prior_outs"`
	Seed1     uint64 `json:"seed1"`
	Seed2     uint64 `json:"seed2"`
}

type simulateResponse struct {
	RequestID           string                   `json:"request_id"`
	Outcome             string                   `json:"outcome"`
	Matchup             models.EventRates        `json:"matchup"`
	Advancement         models.AdvancementResult `json:"advancement"`
	BatterUsedFallback  bool                     `json:"batter_used_fallback"`
	PitcherUsedFallback bool                     `json:"pitcher_used_fallback"`
	AuditTrail          []simulation.DrawRecord  `json:"audit_trail"`
}

// handleSimulate runs a single plate appearance from a JSON request body.
// Every upstream validation failure surfaces as 400 before any RandomSource
// draw.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()

	batter, err := s.repo.GetBatterSeason(ctx, req.BatterID, req.Year)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no batting season for requested player/year")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load batter season")
		return
	}

	pitcher, err := s.repo.GetPitcherSeason(ctx, req.PitcherID, req.Year)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no pitching season for requested player/year")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load pitcher season")
		return
	}

	cfg := s.config
	if req.TeamID != "" {
		parkFactor, err := s.repo.GetTeamParkFactor(ctx, req.TeamID, req.Year)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusInternalServerError, "failed to load park factor")
			return
		}
		if err == nil {
			cfg.ParkFactor = parkFactor
		}
	}

	seed1, seed2 := req.Seed1, req.Seed2
	if seed1 == 0 && seed2 == 0 {
		seed1, seed2 = uuidToSeed(uuid.New())
	}
	rng := simulation.NewSeededRandomSource(seed1, seed2)

	engine, err := simulation.NewSimulationEngine(rng, s.baselines, cfg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	priorBase := models.NewBaseState(req.BaseState.First, req.BaseState.Second, req.BaseState.Third)
	result, err := engine.SimulateAtBat(*batter, *pitcher, req.Year, priorBase, req.PriorOuts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, simulateResponse{
		RequestID:           uuid.New().String(),
		Outcome:             result.Outcome.String(),
		Matchup:             result.Matchup,
		Advancement:         result.Advancement,
		BatterUsedFallback:  result.BatterUsedFallback,
		PitcherUsedFallback: result.PitcherUsedFallback,
		AuditTrail:          result.AuditTrail,
	})
}

// uuidToSeed derives a two-word PCG seed from a random UUID, used only when
// a caller does not pin a seed explicitly. The derived seed is not included
// in the response, so only requests with a pinned seed can be replayed.
func uuidToSeed(id uuid.UUID) (uint64, uint64) {
	b := id[:]
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(b[i])
		lo = lo<<8 | uint64(b[i+8])
	}
	return hi, lo
}
