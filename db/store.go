// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"

	"github.com/danielhkuo/pmr-election/models"
)

const voterColumns = `id, email, display_name, password_hash, role, has_voted, voted_for, voted_at, created_at`

func scanVoter(row interface{ Scan(...any) error }) (models.Voter, error) {
	var v models.Voter
	err := row.Scan(
		&v.ID, &v.Email, &v.DisplayName, &v.PasswordHash,
		&v.Role, &v.HasVoted, &v.VotedFor, &v.VotedAt, &v.CreatedAt,
	)
	return v, err
}

// GetVoter returns the voter record for id. Returns sql.ErrNoRows when the
// voter does not exist.
func GetVoter(ctx context.Context, conn *sql.DB, id string) (models.Voter, error) {
	row := conn.QueryRowContext(ctx, `
		SELECT `+voterColumns+` FROM voter WHERE id = $1
	`, id)
	return scanVoter(row)
}

// GetVoterByEmail returns the voter record for email. Returns sql.ErrNoRows
// when no account is registered under that email.
func GetVoterByEmail(ctx context.Context, conn *sql.DB, email string) (models.Voter, error) {
	row := conn.QueryRowContext(ctx, `
		SELECT `+voterColumns+` FROM voter WHERE email = $1
	`, email)
	return scanVoter(row)
}

// InsertVoter creates a new voter record. The email UNIQUE constraint
// rejects duplicate signups.
func InsertVoter(ctx context.Context, conn *sql.DB, v models.Voter) error {
	_, err := conn.ExecContext(ctx, `
		INSERT INTO voter (id, email, display_name, password_hash, role, has_voted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, v.ID, v.Email, v.DisplayName, v.PasswordHash, v.Role, v.HasVoted, v.CreatedAt)
	return err
}

// ListVoters returns all voter records.
func ListVoters(ctx context.Context, conn *sql.DB) ([]models.Voter, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT `+voterColumns+` FROM voter ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	voters := []models.Voter{}
	for rows.Next() {
		v, err := scanVoter(rows)
		if err != nil {
			return nil, err
		}
		voters = append(voters, v)
	}
	return voters, rows.Err()
}

// ListBallots returns all ballots, newest first.
func ListBallots(ctx context.Context, conn *sql.DB) ([]models.Ballot, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT id, voter_id, voter_email, voter_name, candidate_id, cast_at
		FROM ballot
		ORDER BY cast_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ballots := []models.Ballot{}
	for rows.Next() {
		var b models.Ballot
		if err := rows.Scan(&b.ID, &b.VoterID, &b.VoterEmail, &b.VoterName, &b.CandidateID, &b.CastAt); err != nil {
			return nil, err
		}
		ballots = append(ballots, b)
	}
	return ballots, rows.Err()
}

// PromoteAdmin grants the admin role to the voter registered under email.
// Reports false when no such account exists yet.
func PromoteAdmin(ctx context.Context, conn *sql.DB, email string) (bool, error) {
	res, err := conn.ExecContext(ctx, `
		UPDATE voter SET role = $1 WHERE email = $2
	`, models.RoleAdmin, email)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
