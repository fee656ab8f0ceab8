package server

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey int

const ctxKeyProfileID ctxKey = iota

// profileMiddleware resolves the Bearer token to a registered profile
// and stores its id in the request context.
func profileMiddleware(profiles *ProfileStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(auth, "Bearer ")
			if !found || token == "" {
				writeError(w, http.StatusUnauthorized, "invalid or missing profile token")
				return
			}
			if !profiles.Exists(token) {
				writeError(w, http.StatusUnauthorized, "invalid or missing profile token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyProfileID, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func profileID(r *http.Request) string {
	return r.Context().Value(ctxKeyProfileID).(string)
}
