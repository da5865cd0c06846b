// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/pmr-election/auth"
	"github.com/danielhkuo/pmr-election/cliparse"
	"github.com/danielhkuo/pmr-election/db"
	"github.com/danielhkuo/pmr-election/middleware"
	"github.com/danielhkuo/pmr-election/models"
	"github.com/danielhkuo/pmr-election/tally"
)

type AuthHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	tally *tally.Service
}

func NewAuthHandler(conn *sql.DB, cfg cliparse.Config, tallySvc *tally.Service) *AuthHandler {
	return &AuthHandler{db: conn, cfg: cfg, tally: tallySvc}
}

// SignUp handles POST /auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.DisplayName = strings.TrimSpace(req.DisplayName)

	if req.Email == "" || !strings.Contains(req.Email, "@") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valid email is required")
		return
	}
	if req.DisplayName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "display_name is required")
		return
	}
	if len(req.Password) < 6 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	// Role is assigned by the provisioning config, never by request payload.
	role := models.RoleVoter
	if h.cfg.BootstrapAdmin != "" && req.Email == strings.ToLower(h.cfg.BootstrapAdmin) {
		role = models.RoleAdmin
	}

	voter := models.Voter{
		ID:           uuid.NewString(),
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: hash,
		Role:         role,
		HasVoted:     false,
		CreatedAt:    time.Now().UTC(),
	}

	if err := db.InsertVoter(r.Context(), h.db, voter); err != nil {
		// Check if it's a uniqueness violation
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint failed") {
			middleware.ErrorResponse(w, http.StatusConflict, "Email already registered")
			return
		}
		slog.Error("failed to insert voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	token, err := auth.NewSessionToken(voter.ID, h.cfg.SessionSecret)
	if err != nil {
		slog.Error("failed to sign session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("voter registered", "voter_id", voter.ID, "role", role)

	// Registered-user count changed
	h.tally.Broadcast(r.Context())

	middleware.JSONResponse(w, http.StatusCreated, models.SessionResponse{
		Token:       token,
		VoterID:     voter.ID,
		DisplayName: voter.DisplayName,
		Role:        voter.Role,
	})
}

// SignIn handles POST /auth/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	voter, err := db.GetVoterByEmail(r.Context(), h.db, req.Email)
	if err == sql.ErrNoRows {
		slog.Warn("sign-in for unknown email", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		slog.Error("failed to query voter", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database error")
		return
	}

	if !auth.CheckPassword(voter.PasswordHash, req.Password) {
		slog.Warn("sign-in with wrong password", "voter_id", voter.ID, "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.NewSessionToken(voter.ID, h.cfg.SessionSecret)
	if err != nil {
		slog.Error("failed to sign session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("voter signed in", "voter_id", voter.ID)

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Token:       token,
		VoterID:     voter.ID,
		DisplayName: voter.DisplayName,
		Role:        voter.Role,
	})
}

// SignOut handles POST /auth/signout. Sessions are stateless tokens, so
// sign-out is an acknowledgement; the client discards its token.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Signed out",
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	voter, err := db.GetVoter(r.Context(), h.db, sess.VoterID)
	if err != nil {
		slog.Error("failed to load voter", "error", err, "voter_id", sess.VoterID)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MeResponse{
		VoterID:     voter.ID,
		Email:       voter.Email,
		DisplayName: voter.DisplayName,
		Role:        voter.Role,
		HasVoted:    voter.HasVoted,
		VotedFor:    voter.VotedFor,
	})
}
