package server

import (
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nyangbti/catquiz/internal/catalog"
)

// AdminLoginRequest is the request body for POST /api/admin/login.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminStatsResponse is the response for GET /api/admin/stats.
type AdminStatsResponse struct {
	Breeds    int `json:"breeds"`
	Questions int `json:"questions"`
	Profiles  int `json:"profiles"`
	Shares    int `json:"shares"`
}

func handleAdminLogin(docs *DocStore, passwordHash string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminLoginRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Password == "" {
			writeError(w, http.StatusBadRequest, "password is required")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		sessionID, err := docs.CreateAdminSession(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     adminCookieName,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(7 * 24 * time.Hour / time.Second),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func handleAdminStats(docs *DocStore, profiles *ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shares, err := docs.CountShares(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		profileCount, err := profiles.Count()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, AdminStatsResponse{
			Breeds:    len(catalog.Breeds()),
			Questions: len(catalog.Questions()),
			Profiles:  profileCount,
			Shares:    shares,
		})
	}
}
