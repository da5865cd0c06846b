// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Session and Role Gates

RequireSession authenticates the Bearer token, reloads the voter record,
and attaches an explicit models.Session to the request context:

	mux.HandleFunc("POST /vote", middleware.RequireSession(conn, cfg,
		middleware.RequireRole(models.RoleVoter, handler.CastVote)))

Handlers read the identity back with SessionFrom:

	sess, ok := middleware.SessionFrom(r.Context())

There is no global current-user state; the session object in the request
context is the only carrier of identity. Unauthenticated requests get 401,
wrong-role requests 403.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.SignUpRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used when logging failed sign-in attempts.
*/
package middleware
