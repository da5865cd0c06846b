// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/pmr-election/middleware"
	"github.com/danielhkuo/pmr-election/models"
	"github.com/danielhkuo/pmr-election/tally"
	"github.com/danielhkuo/pmr-election/testutil"
	"github.com/danielhkuo/pmr-election/voting"
)

// TestConcurrentDoubleSubmission verifies that simultaneous vote requests
// from the same voter (double click, duplicated tab) yield exactly one 201
// and 409 for the rest, with a single ballot persisted.
func TestConcurrentDoubleSubmission(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(conn, cfg, voting.NewService(conn), tally.NewService(conn, tally.NewBroker()))

	voterID := testutil.CreateTestVoter(t, conn, "dobel@gmail.com", "Dobel")

	numRequests := 10
	var created, conflicted atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/vote", models.CastVoteRequest{CandidateID: "rangga"}, nil)
			req = req.WithContext(middleware.ContextWithSession(req.Context(), models.Session{
				VoterID: voterID, Role: models.RoleVoter,
			}))
			w := httptest.NewRecorder()

			handler.CastVote(w, req)

			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicted.Add(1)
			default:
				t.Errorf("Unexpected status %d: %s", w.Code, w.Body.String())
			}
		}()
	}

	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("Expected exactly 1 created, got %d", created.Load())
	}
	if conflicted.Load() != int32(numRequests-1) {
		t.Errorf("Expected %d conflicts, got %d", numRequests-1, conflicted.Load())
	}

	var ballotCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ballot WHERE voter_id = $1`, voterID).Scan(&ballotCount); err != nil {
		t.Fatalf("Failed to count ballots: %v", err)
	}
	if ballotCount != 1 {
		t.Errorf("Expected 1 persisted ballot, got %d", ballotCount)
	}
}

// TestConcurrentDistinctVoters verifies independent voters casting at the
// same time each land exactly one ballot and the tally adds up.
func TestConcurrentDistinctVoters(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	tallySvc := tally.NewService(conn, tally.NewBroker())
	handler := NewVotingHandler(conn, cfg, voting.NewService(conn), tallySvc)

	numVoters := 10
	voterIDs := make([]string, numVoters)
	for i := 0; i < numVoters; i++ {
		voterIDs[i] = testutil.CreateTestVoter(t, conn, string(rune('a'+i))+"@gmail.com", "Voter")
	}

	var wg sync.WaitGroup
	for i, id := range voterIDs {
		wg.Add(1)
		go func(idx int, voterID string) {
			defer wg.Done()

			candidate := "rangga"
			if idx%2 == 1 {
				candidate = "ghazi"
			}

			req := testutil.MakeRequest("POST", "/vote", models.CastVoteRequest{CandidateID: candidate}, nil)
			req = req.WithContext(middleware.ContextWithSession(req.Context(), models.Session{
				VoterID: voterID, Role: models.RoleVoter,
			}))
			w := httptest.NewRecorder()

			handler.CastVote(w, req)

			if w.Code != http.StatusCreated {
				t.Errorf("Voter %s: expected 201, got %d: %s", voterID, w.Code, w.Body.String())
			}
		}(i, id)
	}
	wg.Wait()

	stats, err := tallySvc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	if stats.Total != numVoters {
		t.Errorf("Total = %d, want %d", stats.Total, numVoters)
	}
	sum := 0
	for _, c := range stats.Candidates {
		sum += c.Votes
	}
	if sum != stats.Total {
		t.Errorf("Candidate votes sum to %d, total is %d", sum, stats.Total)
	}
	if stats.Turnout != 100.0 {
		t.Errorf("Turnout = %v, want 100.0", stats.Turnout)
	}
}
