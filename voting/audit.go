// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"time"
)

// AuditReport lists voters whose flag and ballot state disagree. Every list
// empty means the single-vote invariant holds across the whole store.
type AuditReport struct {
	VotedWithoutBallot []string `json:"voted_without_ballot"`
	BallotWithoutFlag  []string `json:"ballot_without_flag"`
	CandidateMismatch  []string `json:"candidate_mismatch"`
}

// Clean reports whether the audit found no inconsistencies.
func (r AuditReport) Clean() bool {
	return len(r.VotedWithoutBallot) == 0 &&
		len(r.BallotWithoutFlag) == 0 &&
		len(r.CandidateMismatch) == 0
}

const auditTimeout = 10 * time.Second

// Audit cross-checks the voter and ballot collections. CastVote cannot
// produce a half-applied vote, but a direct store write (or a bug in a
// future writer) could; this is how such a state gets surfaced instead of
// silently passing as success.
func (s *Service) Audit(ctx context.Context) (AuditReport, error) {
	ctx, cancel := context.WithTimeout(ctx, auditTimeout)
	defer cancel()

	report := AuditReport{
		VotedWithoutBallot: []string{},
		BallotWithoutFlag:  []string{},
		CandidateMismatch:  []string{},
	}

	queries := []struct {
		sql  string
		dest *[]string
	}{
		{`
			SELECT v.id FROM voter v
			LEFT JOIN ballot b ON b.voter_id = v.id
			WHERE v.has_voted AND b.id IS NULL
			ORDER BY v.id
		`, &report.VotedWithoutBallot},
		{`
			SELECT b.voter_id FROM ballot b
			JOIN voter v ON v.id = b.voter_id
			WHERE NOT v.has_voted
			ORDER BY b.voter_id
		`, &report.BallotWithoutFlag},
		{`
			SELECT b.voter_id FROM ballot b
			JOIN voter v ON v.id = b.voter_id
			WHERE v.voted_for IS NOT NULL AND v.voted_for <> b.candidate_id
			ORDER BY b.voter_id
		`, &report.CandidateMismatch},
	}

	for _, q := range queries {
		ids, err := collectIDs(ctx, s.db, q.sql)
		if err != nil {
			return AuditReport{}, storeErr("audit", err)
		}
		*q.dest = ids
	}

	return report, nil
}

func collectIDs(ctx context.Context, conn *sql.DB, query string) ([]string, error) {
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
