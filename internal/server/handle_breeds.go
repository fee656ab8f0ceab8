package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nyangbti/catquiz/internal/catalog"
	"github.com/nyangbti/catquiz/internal/catquiz"
	"github.com/nyangbti/catquiz/internal/match"
)

// relatedCount is how many related breeds a detail page shows.
const relatedCount = 3

// BreedDetailResponse is the response for GET /api/breeds/{id}.
type BreedDetailResponse struct {
	Breed   catquiz.Breed          `json:"breed"`
	Related []catquiz.SimilarBreed `json:"related"`
}

func handleListBreeds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.Breeds())
	}
}

func handleGetBreed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, ok := catalog.BreedByID(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "breed not found")
			return
		}

		related := match.RelatedBreeds(b, catalog.Breeds(), relatedCount)
		if related == nil {
			related = []catquiz.SimilarBreed{}
		}

		writeJSON(w, http.StatusOK, BreedDetailResponse{
			Breed:   b,
			Related: related,
		})
	}
}

func handleSimilarBreeds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, ok := catalog.BreedByID(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "breed not found")
			return
		}
		writeJSON(w, http.StatusOK, match.BySimilarity(b, catalog.Breeds()))
	}
}
