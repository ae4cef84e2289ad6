package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/abhisek/mamchoi/internal/catalog"
	"github.com/abhisek/mamchoi/internal/export"
	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/round"
)

// Tier is a difficulty as listed by /api/modes.
type Tier struct {
	ID           question.Difficulty `json:"id"`
	Name         string              `json:"name"`
	DefaultCount int                 `json:"defaultCount"`
}

// ModeInfo describes a playable mode.
type ModeInfo struct {
	ID    question.Mode `json:"id"`
	Name  string        `json:"name"`
	Tiers []Tier        `json:"tiers"`
}

// SetsResponse is the body of /api/sets.
type SetsResponse struct {
	StarterIcons []string           `json:"starterIcons"`
	Sets         []catalog.ImageSet `json:"sets"`
}

// RoundRequest is the body of POST /api/rounds.
type RoundRequest struct {
	Mode           string   `json:"mode"`
	Difficulty     string   `json:"difficulty"`
	UnlockedSetIDs []string `json:"unlockedSetIds"`
	RecentIcons    []string `json:"recentIcons"`
	Count          int      `json:"count"`
	Seed           uint64   `json:"seed"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listModes(w http.ResponseWriter, r *http.Request) {
	modes := make([]ModeInfo, 0, len(question.AllModes))
	for _, m := range question.AllModes {
		info := ModeInfo{ID: m, Name: m.DisplayName()}
		for _, d := range question.AllDifficulties {
			info.Tiers = append(info.Tiers, Tier{ID: d, Name: d.DisplayName(), DefaultCount: round.DefaultCount(m, d)})
		}
		modes = append(modes, info)
	}
	writeJSON(w, http.StatusOK, modes)
}

func (s *Server) listSets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SetsResponse{
		StarterIcons: catalog.StarterIcons,
		Sets:         catalog.UnlockableSets,
	})
}

func (s *Server) createRound(w http.ResponseWriter, r *http.Request) {
	var body RoundRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	req, err := body.toRequest()
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err)
		return
	}

	res, err := s.gen.Generate(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if r.Context().Err() != nil {
			status = http.StatusServiceUnavailable
		}
		s.respondError(w, status, err)
		return
	}

	raw, err := export.Marshal(export.NewDocument(req, res, s.now()))
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

func (b RoundRequest) toRequest() (round.Request, error) {
	m, err := question.ParseMode(b.Mode)
	if err != nil {
		return round.Request{}, err
	}
	d, err := question.ParseDifficulty(b.Difficulty)
	if err != nil {
		return round.Request{}, err
	}
	if b.Count < 0 || b.Count > MaxCount {
		return round.Request{}, fmt.Errorf("count must be between 0 and %d, got %d", MaxCount, b.Count)
	}
	for _, id := range b.UnlockedSetIDs {
		if _, ok := catalog.SetByID(id); !ok {
			return round.Request{}, fmt.Errorf("unknown image set %q", id)
		}
	}
	return round.Request{
		Mode:           m,
		Difficulty:     d,
		UnlockedSetIDs: b.UnlockedSetIDs,
		RecentIcons:    b.RecentIcons,
		Count:          b.Count,
		Seed:           b.Seed,
	}, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) respondError(w http.ResponseWriter, code int, err error) {
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
