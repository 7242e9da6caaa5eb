// Package http provides the HTTP API of the maintenance tracker.
package http

import (
	"context"
	"net/http"

	"github.com/atinyakov/FleetKeeper/internal/models"
)

// AuthService defines the authentication operations required by the
// handlers.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	IssueToken(u models.User) (string, error)
	Users(ctx context.Context, actor *models.User) ([]models.User, error)
	Engineers(ctx context.Context, actor *models.User) ([]models.User, error)
}

// AuthHandler handles login and user listing.
type AuthHandler struct {
	AuthService AuthService
}

// LoginRequest is the JSON payload of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the logged-in user.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login checks the credentials and issues a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decode(w, r, &req) {
		return
	}
	u, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	token, err := h.AuthService.IssueToken(u)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: u})
}

// Logout is stateless; the client discards its token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the session user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, actor(r).Public())
}

// Users lists every user, or only engineers with ?role=Engineer.
func (h *AuthHandler) Users(w http.ResponseWriter, r *http.Request) {
	var (
		users []models.User
		err   error
	)
	if models.Role(r.URL.Query().Get("role")) == models.RoleEngineer {
		users, err = h.AuthService.Engineers(r.Context(), actor(r))
	} else {
		users, err = h.AuthService.Users(r.Context(), actor(r))
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
