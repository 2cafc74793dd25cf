package httpx

import (
	"net/http"
)

// NotAuthenticated is the envelope message written to unauthenticated
// callers of a protected endpoint.
const NotAuthenticated = "Not authenticated"

// RequireAuth rejects requests whose context carries no user id with a 401
// envelope.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserIDFromContext(r.Context()); !ok {
			WriteError(w, http.StatusUnauthorized, NotAuthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}
