package server

import (
	"errors"
	"log"
	"net/http"

	"tasklist-backend/internal/service"
)

func (s *Server) registerHandler(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	user, err := s.authService.Register(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			respondWithError(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, service.ErrEmailTaken):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("Error calling Register service: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("Error issuing token after registration: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	s.setSessionCookie(w, token)
	respondWithJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"token":   token,
		"user":    user,
	})
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	user, err := s.authService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		} else {
			log.Printf("Error calling Login service: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("Error issuing token after login: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	s.setSessionCookie(w, token)
	respondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// logoutHandler clears the session cookie. The token itself stays
// cryptographically valid until it expires; there is no revocation list.
func (s *Server) logoutHandler(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)
	respondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Logout successful",
		"success": true,
	})
}

func (s *Server) meHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
		} else {
			log.Printf("Error fetching current user: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{"user": user})
}
