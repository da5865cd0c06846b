// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the PMR Election API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(conn, cfg)

# Endpoints

Health:

	GET /health

Identity (public):

	POST /auth/signup  - Create account, returns session token
	POST /auth/signin  - Sign in, returns session token
	POST /auth/signout - Acknowledge sign-out
	GET  /auth/me      - Current identity (session required)

Voting (voter-role session required, candidates public):

	GET  /candidates  - Fixed candidate set
	POST /vote        - Cast the voter's single vote
	GET  /vote/status - Caller's vote status

Admin reporting (admin-role session required):

	GET /admin/stats        - Tally snapshot
	GET /admin/stats/stream - Live tally stream (SSE)
	GET /admin/ballots      - All ballots, newest first
	GET /admin/export       - Results as CSV download
	GET /admin/audit        - Voter/ballot consistency check

# Access Control

Every authenticated route is wrapped in RequireSession, which turns the
Bearer token into an explicit session object, then RequireRole for the
voter or admin flows. Unauthenticated requests get 401, wrong-role
requests 403. Admin identities are deliberately kept out of the voting
flow: the admin account exists to observe and report, not to vote.

# Service Initialization

The router owns the service wiring:

	broker := tally.NewBroker()
	tallySvc := tally.NewService(conn, broker)
	votingSvc := voting.NewService(conn)

Handlers receive the database connection, configuration, and services.
*/
package router
