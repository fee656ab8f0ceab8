package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nyangbti/catquiz/internal/catalog"
	"github.com/nyangbti/catquiz/internal/catquiz"
	"github.com/nyangbti/catquiz/internal/match"
)

// ShareRequest is the request body for POST /api/share. Breakdown is
// optional; shares created from a URL-only result omit it.
type ShareRequest struct {
	BreedID   string                   `json:"breedId"`
	Score     int                      `json:"score"`
	Breakdown map[catquiz.Category]int `json:"breakdown,omitempty"`
}

// ShareCreatedResponse is the response for POST /api/share.
type ShareCreatedResponse struct {
	ID string `json:"id"`
}

// ShareResponse is the response for GET /api/share/{id}.
type ShareResponse struct {
	Result      catquiz.MatchResult `json:"result"`
	Explanation catquiz.Explanation `json:"explanation"`
	CreatedAt   string              `json:"createdAt"`
}

func handleCreateShare(docs *DocStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ShareRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if _, ok := catalog.BreedByID(req.BreedID); !ok {
			writeError(w, http.StatusBadRequest, "unknown breed id")
			return
		}
		if req.Score < 0 || req.Score > 100 {
			writeError(w, http.StatusBadRequest, "score must be in [0,100]")
			return
		}

		doc := shareDoc{
			ID:        uuid.NewString(),
			BreedID:   req.BreedID,
			Score:     req.Score,
			Breakdown: req.Breakdown,
			CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		}
		if err := docs.PutShare(r.Context(), doc); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, ShareCreatedResponse{ID: doc.ID})
	}
}

func handleGetShare(docs *DocStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := docs.GetShare(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "share not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		b, ok := catalog.BreedByID(doc.BreedID)
		if !ok {
			// Breed removed from the catalog after the share was created.
			writeError(w, http.StatusNotFound, "share not found")
			return
		}

		breakdown := doc.Breakdown
		if breakdown == nil {
			breakdown = emptyBreakdown()
		}
		result := catquiz.MatchResult{Breed: b, Score: doc.Score, Breakdown: breakdown}

		writeJSON(w, http.StatusOK, ShareResponse{
			Result:      result,
			Explanation: match.BuildExplanation(result),
			CreatedAt:   doc.CreatedAt,
		})
	}
}
