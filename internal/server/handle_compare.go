package server

import (
	"net/http"

	"github.com/nyangbti/catquiz/internal/catalog"
	"github.com/nyangbti/catquiz/internal/catquiz"
	"github.com/nyangbti/catquiz/internal/match"
)

// CompareRequest holds two answer sets to compare side by side.
type CompareRequest struct {
	Mine   []catquiz.AnswerScore `json:"mine"`
	Friend []catquiz.AnswerScore `json:"friend"`
}

// CompareResponse pairs both top matches with the similarity between
// the two matched breeds.
type CompareResponse struct {
	Mine            catquiz.MatchResult `json:"mine"`
	Friend          catquiz.MatchResult `json:"friend"`
	BreedSimilarity int                 `json:"breedSimilarity"`
	KeyDifference   string              `json:"keyDifference"`
}

func handleCompare(engine *match.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompareRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		breeds := catalog.Breeds()
		mine := engine.Compute(req.Mine, breeds)[0]
		friend := engine.Compute(req.Friend, breeds)[0]

		resp := CompareResponse{
			Mine:            mine,
			Friend:          friend,
			BreedSimilarity: match.Similarity(mine.Breed, friend.Breed),
		}
		if mine.Breed.ID != friend.Breed.ID {
			if related := match.BySimilarity(mine.Breed, []catquiz.Breed{friend.Breed}); len(related) > 0 {
				resp.KeyDifference = related[0].KeyDifference
			}
		} else {
			resp.KeyDifference = "둘 다 같은 묘종과 매칭됐어요"
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
