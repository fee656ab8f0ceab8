package server

import "net/http"

const adminCookieName = "admin_session"

// adminAuthMiddleware checks the admin_session cookie against the
// sessions table.
func adminAuthMiddleware(docs *DocStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(adminCookieName)
			if err != nil || cookie.Value == "" {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			ok, err := docs.HasAdminSession(r.Context(), cookie.Value)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if !ok {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
