// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/pmr-election/models"
)

var (
	ErrAlreadyVoted     = errors.New("voter has already cast a ballot")
	ErrInvalidCandidate = errors.New("unknown candidate")
	ErrVoterNotFound    = errors.New("voter not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// castTimeout bounds every store round trip of a cast so a stalled
// connection surfaces as a failed request instead of a hung one.
const castTimeout = 5 * time.Second

type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// CastVote records voterID's single vote for candidateID.
//
// The voter flag and the ballot insert commit in one transaction, and the
// flag is flipped with a conditional UPDATE (WHERE has_voted = FALSE), so
// two concurrent casts for the same voter serialize on the row lock and the
// loser fails with ErrAlreadyVoted. The UNIQUE constraint on ballot.voter_id
// backstops the same invariant. A committed cast always has both writes;
// a failed cast has neither.
func (s *Service) CastVote(ctx context.Context, voterID, candidateID string) (models.Ballot, error) {
	if !models.ValidCandidate(candidateID) {
		return models.Ballot{}, ErrInvalidCandidate
	}

	ctx, cancel := context.WithTimeout(ctx, castTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Ballot{}, storeErr("begin cast", err)
	}
	defer tx.Rollback()

	// Read the voter for the denormalized ballot fields and to distinguish
	// a missing voter from one who already voted.
	var email, displayName string
	var hasVoted bool
	err = tx.QueryRowContext(ctx, `
		SELECT email, display_name, has_voted FROM voter WHERE id = $1
	`, voterID).Scan(&email, &displayName, &hasVoted)

	if err == sql.ErrNoRows {
		return models.Ballot{}, ErrVoterNotFound
	}
	if err != nil {
		return models.Ballot{}, storeErr("read voter", err)
	}
	if hasVoted {
		return models.Ballot{}, ErrAlreadyVoted
	}

	now := time.Now().UTC()

	// Conditional write: only the first cast finds has_voted = FALSE.
	res, err := tx.ExecContext(ctx, `
		UPDATE voter
		SET has_voted = TRUE, voted_for = $1, voted_at = $2
		WHERE id = $3 AND has_voted = FALSE
	`, candidateID, now, voterID)
	if err != nil {
		return models.Ballot{}, storeErr("update voter", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Ballot{}, storeErr("update voter", err)
	}
	if n == 0 {
		// Lost the race to a concurrent cast that committed first.
		return models.Ballot{}, ErrAlreadyVoted
	}

	ballot := models.Ballot{
		ID:          uuid.NewString(),
		VoterID:     voterID,
		VoterEmail:  email,
		VoterName:   displayName,
		CandidateID: candidateID,
		CastAt:      now,
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ballot (id, voter_id, voter_email, voter_name, candidate_id, cast_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, ballot.ID, ballot.VoterID, ballot.VoterEmail, ballot.VoterName, ballot.CandidateID, ballot.CastAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Ballot{}, ErrAlreadyVoted
		}
		return models.Ballot{}, storeErr("insert ballot", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Ballot{}, storeErr("commit cast", err)
	}

	return ballot, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}

// isUniqueViolation matches the constraint errors of both supported drivers.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
