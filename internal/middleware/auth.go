package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie under which the admin session travels.
const SessionName = "session"

// RequireAdmin rejects requests whose session does not carry is_admin,
// with the JSON envelope the API uses everywhere. Storage is never
// touched for a rejected request.
func RequireAdmin(store *sessions.CookieStore, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, _ := store.Get(r, SessionName)
			isAdmin, _ := session.Values["is_admin"].(bool)

			if !isAdmin {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": message})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
