// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pmr-election/cliparse"
	"github.com/danielhkuo/pmr-election/db"
	"github.com/danielhkuo/pmr-election/middleware"
	"github.com/danielhkuo/pmr-election/models"
	"github.com/danielhkuo/pmr-election/tally"
	"github.com/danielhkuo/pmr-election/voting"
)

type VotingHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	voting *voting.Service
	tally  *tally.Service
}

func NewVotingHandler(conn *sql.DB, cfg cliparse.Config, votingSvc *voting.Service, tallySvc *tally.Service) *VotingHandler {
	return &VotingHandler{db: conn, cfg: cfg, voting: votingSvc, tally: tallySvc}
}

// ListCandidates handles GET /candidates
func (h *VotingHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.Candidates)
}

// CastVote handles POST /vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	ballot, err := h.voting.CastVote(r.Context(), sess.VoterID, req.CandidateID)
	switch {
	case errors.Is(err, voting.ErrInvalidCandidate):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid candidate_id: "+req.CandidateID)
		return
	case errors.Is(err, voting.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted")
		return
	case errors.Is(err, voting.ErrVoterNotFound):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unknown voter")
		return
	case err != nil:
		slog.Error("failed to cast vote", "error", err, "voter_id", sess.VoterID)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Vote could not be saved, please retry")
		return
	}

	slog.Info("vote cast", "voter_id", sess.VoterID, "ballot_id", ballot.ID)

	h.tally.Broadcast(r.Context())

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		BallotID: ballot.ID,
		Message:  "Vote recorded",
	})
}

// Status handles GET /vote/status
func (h *VotingHandler) Status(w http.ResponseWriter, r *http.Request) {
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

	middleware.JSONResponse(w, http.StatusOK, models.VoteStatusResponse{
		HasVoted: voter.HasVoted,
		VotedFor: voter.VotedFor,
		VotedAt:  voter.VotedAt,
	})
}
