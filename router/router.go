// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/pmr-election/cliparse"
	"github.com/danielhkuo/pmr-election/handlers"
	"github.com/danielhkuo/pmr-election/middleware"
	"github.com/danielhkuo/pmr-election/models"
	"github.com/danielhkuo/pmr-election/tally"
	"github.com/danielhkuo/pmr-election/voting"
)

func NewRouter(conn *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize services
	broker := tally.NewBroker()
	tallySvc := tally.NewService(conn, broker)
	votingSvc := voting.NewService(conn)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(conn, cfg, tallySvc)
	votingHandler := handlers.NewVotingHandler(conn, cfg, votingSvc, tallySvc)
	adminHandler := handlers.NewAdminHandler(conn, cfg, votingSvc, tallySvc)

	// Gate helpers
	session := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSession(conn, cfg, h))
	}
	voterOnly := func(h http.HandlerFunc) http.HandlerFunc {
		return session(middleware.RequireRole(models.RoleVoter, h))
	}
	adminOnly := func(h http.HandlerFunc) http.HandlerFunc {
		return session(middleware.RequireRole(models.RoleAdmin, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Identity (public)
	mux.HandleFunc("POST /auth/signup", middleware.WithLogging(authHandler.SignUp))
	mux.HandleFunc("POST /auth/signin", middleware.WithLogging(authHandler.SignIn))
	mux.HandleFunc("POST /auth/signout", middleware.WithLogging(authHandler.SignOut))
	mux.HandleFunc("GET /auth/me", session(authHandler.Me))

	// Voting (voter role; admins follow the tally, they don't vote)
	mux.HandleFunc("GET /candidates", middleware.WithLogging(votingHandler.ListCandidates))
	mux.HandleFunc("POST /vote", voterOnly(votingHandler.CastVote))
	mux.HandleFunc("GET /vote/status", voterOnly(votingHandler.Status))

	// Admin reporting
	mux.HandleFunc("GET /admin/stats", adminOnly(adminHandler.Stats))
	mux.HandleFunc("GET /admin/stats/stream", adminOnly(adminHandler.StreamStats))
	mux.HandleFunc("GET /admin/ballots", adminOnly(adminHandler.ListBallots))
	mux.HandleFunc("GET /admin/export", adminOnly(adminHandler.Export))
	mux.HandleFunc("GET /admin/audit", adminOnly(adminHandler.Audit))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pmr-election API v1"))
	})

	return mux
}
