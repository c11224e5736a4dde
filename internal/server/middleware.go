package server

import (
	"context"
	"net/http"
	"time"

	"tasklist-backend/internal/auth"
)

// Context key type to avoid collisions.
type contextKey string

// userIDContextKey carries the identity resolved by requireAuth.
const userIDContextKey contextKey = "userID"

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "token"

// requireAuth is the gate in front of every protected route: extract the
// session token from the request cookie, verify it, and confirm the claimed
// user still exists. Every failure path yields the same generic 401 so a
// caller cannot tell which step denied it.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, err := s.tokens.Verify(cookie.Value)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// The token may outlive the account; deny if the record is gone.
		if _, err := s.authService.GetUserByID(r.Context(), userID); err != nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromRequest returns the identity stashed by requireAuth.
func userIDFromRequest(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(userIDContextKey).(uint)
	return id, ok
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL / time.Second),
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}
