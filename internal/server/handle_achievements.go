package server

import (
	"net/http"

	"github.com/nyangbti/catquiz/internal/achieve"
)

// AchievementsResponse is the response for GET /api/profile/achievements.
type AchievementsResponse struct {
	State       achieve.State         `json:"state"`
	Definitions []achieve.Achievement `json:"definitions"`
}

// TrackEventResponse is the response for POST /api/profile/events.
type TrackEventResponse struct {
	State           achieve.State         `json:"state"`
	NewAchievements []achieve.Achievement `json:"newAchievements"`
}

func handleGetAchievements(achievements *achieve.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, AchievementsResponse{
			State:       achievements.Load(profileID(r)),
			Definitions: achieve.Definitions(),
		})
	}
}

func handleTrackEvent(achievements *achieve.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event achieve.Event
		if err := readJSON(r, &event); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		state, fresh, err := achievements.Track(profileID(r), event)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if fresh == nil {
			fresh = []achieve.Achievement{}
		}

		writeJSON(w, http.StatusOK, TrackEventResponse{
			State:           state,
			NewAchievements: fresh,
		})
	}
}
