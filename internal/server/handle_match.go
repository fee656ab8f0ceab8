package server

import (
	"net/http"
	"strconv"

	"github.com/nyangbti/catquiz/internal/catalog"
	"github.com/nyangbti/catquiz/internal/catquiz"
	"github.com/nyangbti/catquiz/internal/match"
)

// MatchRequest is the request body for POST /api/match. Answers may
// be partial or empty.
type MatchRequest struct {
	Answers []catquiz.AnswerScore `json:"answers"`
}

// MatchResponse carries the full ranking plus the explanation for the
// top match.
type MatchResponse struct {
	Results     []catquiz.MatchResult `json:"results"`
	Explanation catquiz.Explanation   `json:"explanation"`
}

func handleMatch(engine *match.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MatchRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		results := engine.Compute(req.Answers, catalog.Breeds())

		writeJSON(w, http.StatusOK, MatchResponse{
			Results:     results,
			Explanation: match.BuildExplanation(results[0]),
		})
	}
}

// handleSharedMatch reconstructs a result from share-link query
// parameters (breed id and score only). The breakdown is all zeros,
// which routes the explanation through its fixed fallback.
func handleSharedMatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, ok := catalog.BreedByID(r.URL.Query().Get("breed"))
		if !ok {
			writeError(w, http.StatusNotFound, "breed not found")
			return
		}

		score, err := strconv.Atoi(r.URL.Query().Get("score"))
		if err != nil || score < 0 || score > 100 {
			writeError(w, http.StatusBadRequest, "score must be an integer in [0,100]")
			return
		}

		result := catquiz.MatchResult{
			Breed:     b,
			Score:     score,
			Breakdown: emptyBreakdown(),
		}

		writeJSON(w, http.StatusOK, MatchResponse{
			Results:     []catquiz.MatchResult{result},
			Explanation: match.BuildExplanation(result),
		})
	}
}

func emptyBreakdown() map[catquiz.Category]int {
	bd := make(map[catquiz.Category]int, len(catquiz.Categories))
	for _, c := range catquiz.Categories {
		bd[c] = 0
	}
	return bd
}
