package server

import (
	"net/http"
	"time"

	"github.com/nyangbti/catquiz/internal/catalog"
	"github.com/nyangbti/catquiz/internal/catquiz"
)

// HistoryRequest is the request body for POST /api/profile/history.
type HistoryRequest struct {
	BreedID string `json:"breedId"`
	Score   int    `json:"score"`
}

func handleGetHistory(profiles *ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := profiles.History(profileID(r))
		if entries == nil {
			entries = []catquiz.HistoryEntry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

func handleAppendHistory(profiles *ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HistoryRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		b, ok := catalog.BreedByID(req.BreedID)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown breed id")
			return
		}
		if req.Score < 0 || req.Score > 100 {
			writeError(w, http.StatusBadRequest, "score must be in [0,100]")
			return
		}

		entries, err := profiles.AppendHistory(profileID(r), catquiz.HistoryEntry{
			BreedID:   b.ID,
			BreedName: b.Name,
			Score:     req.Score,
			TakenAt:   time.Now().UTC(),
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}
