// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the PMR Election API.

# Handler Types

Each handler is a struct with database, config, and service dependencies:

  - AuthHandler: Signup, signin, signout, session introspection
  - VotingHandler: Candidate list, vote casting, vote status
  - AdminHandler: Tally stats, live stream, ballots, CSV export, audit

Handlers are created via constructor functions:

	authHandler := handlers.NewAuthHandler(conn, cfg, tallySvc)

# Auth Flow

	POST /auth/signup  → SignUp (creates voter record, returns session token)
	POST /auth/signin  → SignIn (returns session token)
	POST /auth/signout → SignOut (stateless acknowledgement)
	GET  /auth/me      → Me (identity plus vote status)

# Voting Flow

Requires a voter-role session (Authorization: Bearer token):

	GET  /candidates  → ListCandidates (fixed set, public)
	POST /vote        → CastVote (exactly once per voter)
	GET  /vote/status → Status

A second cast attempt returns 409 with no state change. Unknown candidate
ids are rejected with 400 before any write.

# Admin Flow

Requires an admin-role session:

	GET /admin/stats        → Stats (one-shot tally snapshot)
	GET /admin/stats/stream → StreamStats (SSE, one event per change)
	GET /admin/ballots      → ListBallots (newest first)
	GET /admin/export       → Export (CSV download)
	GET /admin/audit        → Audit (voter/ballot consistency check)

Both mutating flows (signup, cast) broadcast a fresh tally snapshot to all
stream subscribers.
*/
package handlers
