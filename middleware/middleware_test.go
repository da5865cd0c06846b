// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pmr-election/models"
	"github.com/danielhkuo/pmr-election/testutil"
)

func TestWithLogging(t *testing.T) {
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"status": "ok"})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok in body, got %s", body["status"])
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusForbidden, "Admin access required")

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", w.Code)
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse error body: %v", err)
	}
	if body.Error != "Admin access required" {
		t.Errorf("Expected error message in body, got %s", body.Error)
	}
}

func TestSessionContextRoundTrip(t *testing.T) {
	sess := models.Session{VoterID: "v-1", Email: "a@gmail.com", Role: models.RoleVoter}
	ctx := ContextWithSession(context.Background(), sess)

	got, ok := SessionFrom(ctx)
	if !ok {
		t.Fatal("Expected session in context")
	}
	if got.VoterID != "v-1" || got.Role != models.RoleVoter {
		t.Errorf("SessionFrom() = %+v, want %+v", got, sess)
	}

	if _, ok := SessionFrom(context.Background()); ok {
		t.Error("Expected no session in a bare context")
	}
}

func TestRequireSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	voterID := testutil.CreateTestVoter(t, conn, "mw@gmail.com", "Middleware")

	var seen models.Session
	protected := RequireSession(conn, cfg, func(w http.ResponseWriter, r *http.Request) {
		seen, _ = SessionFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	// No Authorization header
	w := httptest.NewRecorder()
	protected(w, httptest.NewRequest("GET", "/vote/status", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Missing header: expected 401, got %d", w.Code)
	}

	// Malformed header
	req := httptest.NewRequest("GET", "/vote/status", nil)
	req.Header.Set("Authorization", "Token abc")
	w = httptest.NewRecorder()
	protected(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Malformed header: expected 401, got %d", w.Code)
	}

	// Garbage token
	req = httptest.NewRequest("GET", "/vote/status", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	protected(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Garbage token: expected 401, got %d", w.Code)
	}

	// Valid token for a deleted account
	req = httptest.NewRequest("GET", "/vote/status", nil)
	req.Header.Set("Authorization", "Bearer "+testutil.SessionToken(t, cfg, "gone"))
	w = httptest.NewRecorder()
	protected(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Unknown voter: expected 401, got %d", w.Code)
	}

	// Valid token
	req = httptest.NewRequest("GET", "/vote/status", nil)
	req.Header.Set("Authorization", "Bearer "+testutil.SessionToken(t, cfg, voterID))
	w = httptest.NewRecorder()
	protected(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Valid token: expected 200, got %d", w.Code)
	}
	if seen.VoterID != voterID || seen.Email != "mw@gmail.com" {
		t.Errorf("Session in context = %+v, want voter %s", seen, voterID)
	}
}

func TestRequireRole(t *testing.T) {
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	adminOnly := RequireRole(models.RoleAdmin, next)

	// No session in context
	w := httptest.NewRecorder()
	adminOnly(w, httptest.NewRequest("GET", "/admin/stats", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("No session: expected 401, got %d", w.Code)
	}

	// Voter session on an admin route
	req := httptest.NewRequest("GET", "/admin/stats", nil)
	req = req.WithContext(ContextWithSession(req.Context(), models.Session{VoterID: "v", Role: models.RoleVoter}))
	w = httptest.NewRecorder()
	adminOnly(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("Voter on admin route: expected 403, got %d", w.Code)
	}

	// Admin session
	req = httptest.NewRequest("GET", "/admin/stats", nil)
	req = req.WithContext(ContextWithSession(req.Context(), models.Session{VoterID: "a", Role: models.RoleAdmin}))
	w = httptest.NewRecorder()
	adminOnly(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Admin on admin route: expected 200, got %d", w.Code)
	}
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.168.1.10:54321"
	if ip := GetClientIP(req); ip != "192.168.1.10" {
		t.Errorf("GetClientIP() = %s, want 192.168.1.10", ip)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if ip := GetClientIP(req); ip != "203.0.113.7" {
		t.Errorf("GetClientIP() with X-Forwarded-For = %s, want 203.0.113.7", ip)
	}
}
