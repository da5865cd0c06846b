// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pmr-election/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(conn, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(conn, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "pmr-election API v1" {
		t.Errorf("Expected API identifier, got '%s'", w.Body.String())
	}
}

func TestMethodRouting(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(conn, cfg)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"GET on signup", "GET", "/auth/signup", http.StatusMethodNotAllowed},
		{"DELETE on vote", "DELETE", "/vote", http.StatusMethodNotAllowed},
		{"POST on candidates", "POST", "/candidates", http.StatusMethodNotAllowed},
		{"POST on admin stats", "POST", "/admin/stats", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("%s %s: expected %d, got %d", tt.method, tt.path, tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestRoleGates(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(conn, cfg)

	voterID := testutil.CreateTestVoter(t, conn, "gate-voter@gmail.com", "Gate Voter")
	adminID := testutil.CreateTestAdmin(t, conn, "gate-admin@gmail.com", "Gate Admin")

	voterToken := testutil.SessionToken(t, cfg, voterID)
	adminToken := testutil.SessionToken(t, cfg, adminID)

	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		expectedStatus int
	}{
		{"admin route without token", "GET", "/admin/stats", "", http.StatusUnauthorized},
		{"admin route with voter token", "GET", "/admin/stats", voterToken, http.StatusForbidden},
		{"admin route with admin token", "GET", "/admin/stats", adminToken, http.StatusOK},
		{"voter route without token", "GET", "/vote/status", "", http.StatusUnauthorized},
		{"voter route with admin token", "GET", "/vote/status", adminToken, http.StatusForbidden},
		{"voter route with voter token", "GET", "/vote/status", voterToken, http.StatusOK},
		{"me with either role", "GET", "/auth/me", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("%s: expected %d, got %d: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
