// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the PMR Election API server.

PMR Election is the backend for a single school election with two fixed
candidates. Authenticated voters cast exactly one vote each; an admin
account follows live tallies and exports results as CSV.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3419 -d "postgres://..." -session-secret "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL or SQLite connection string
  - SESSION_SECRET (-session-secret): Secret for signing session tokens

Optional settings:

  - PORT (-p): Server port (default: 3419)
  - DATABASE_TYPE (-t): "postgres" or "sqlite" (default: sqlite)
  - BOOTSTRAP_ADMIN (-bootstrap-admin): Email promoted to the admin role at startup
  - REPORT_TITLE / REPORT_SUBTITLE: Header lines of the CSV export

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, voting, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, session + role gates
  - models: Domain and request/response types, fixed candidate set
  - auth: Password hashing and session tokens
  - voting: Vote casting with the single-vote guarantee
  - tally: Stats computation and live-update fan-out
  - export: CSV rendering of results
  - db: Schema creation and store queries
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
