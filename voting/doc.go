// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements vote casting with the single-vote guarantee.

# Casting

CastVote records a voter's one vote in a single transaction:

	ballot, err := svc.CastVote(ctx, voterID, candidateID)

The voter record update uses a conditional write (WHERE has_voted = FALSE),
so a concurrent double submission - double click, two tabs - serializes on
the row lock and the loser gets ErrAlreadyVoted. The UNIQUE constraint on
ballot.voter_id backstops the same invariant at the storage layer. Because
both writes share the transaction, a committed cast always has a matching
voter flag and ballot; a failed cast changes nothing.

Resubmission after a successful cast is an idempotent rejection: it fails
with ErrAlreadyVoted and leaves state untouched, whichever candidate the
retry names. There is no path for changing a vote once cast.

# Errors

  - ErrInvalidCandidate: candidate id not in the fixed set (checked before
    any write)
  - ErrAlreadyVoted: the voter's vote is already recorded
  - ErrVoterNotFound: no voter record for the session's id
  - ErrStoreUnavailable: wrapped database failure; callers may retry

Use errors.Is to classify; the store cause is preserved in the message.

# Audit

Audit cross-checks the voter and ballot collections for half-applied votes:

	report, err := svc.Audit(ctx)
	if !report.Clean() { ... }

A non-clean report means some writer bypassed CastVote; it is surfaced via
the admin API rather than silently tolerated.
*/
package voting
