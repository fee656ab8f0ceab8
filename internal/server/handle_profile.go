package server

import (
	"net/http"

	"github.com/nyangbti/catquiz/internal/achieve"
)

// ProfileCreatedResponse is the response for POST /api/profile. The
// token is the bearer credential for all profile-scoped endpoints.
type ProfileCreatedResponse struct {
	Token string `json:"token"`
}

func handleCreateProfile(profiles *ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := profiles.Create()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, ProfileCreatedResponse{Token: id})
	}
}

// handleResetProfile wipes the profile's achievement state and result
// history. The profile itself (and its token) survives.
func handleResetProfile(profiles *ProfileStore, achievements *achieve.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := profileID(r)
		if err := achievements.Reset(id); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if err := profiles.ClearHistory(id); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
