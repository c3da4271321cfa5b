package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/caltrack/caltrack/internal/models"
	"github.com/caltrack/caltrack/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new user. Returns service.ErrDuplicateEmail if
	// the email is taken.
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	// Login verifies credentials and issues a session token. Returns
	// service.ErrInvalidCredentials on unknown email or wrong password.
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	AuthService AuthService
}

// RegisterRequest represents the JSON payload for user registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the public view of a user.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register handles POST /api/auth/register.
// It expects a JSON body with non-empty name, email, and password, and
// responds 201 with the public user fields. A taken email responds 400.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "email already registered")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

// Login handles POST /api/auth/login.
// On success it responds with the session token and the public user
// fields. Unknown email and wrong password both respond 400 with the same
// message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	tok, user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, "invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": tok,
		"user":  userResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}
