// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SignUpRequest: email, password, display_name
  - SignInRequest: email, password
  - CastVoteRequest: candidate_id

# Response Types

Types for JSON responses:

  - SessionResponse: token, voter_id, display_name, role
  - CastVoteResponse: ballot_id, message
  - VoteStatusResponse: has_voted, voted_for, voted_at
  - MeResponse: identity plus vote status
  - BallotListResponse: ballots, count
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Voter: registered participant with role and vote status
  - Ballot: immutable record of one cast vote, denormalized voter fields
  - Session: authenticated identity carried in the request context
  - Candidate: fixed reference data (id, name, slogan, vision, mission)
  - Stats, CandidateCount: tally aggregates

# Invariants

A voter's has_voted is true iff voted_for is present, and iff exactly one
ballot references that voter. voted_for is write-once.

# Constants

Voter roles:

	RoleVoter = "voter"
	RoleAdmin = "admin"

# Candidate Set

The election has exactly two candidates, rangga and ghazi, defined in
candidates.go. CandidateByID, ValidCandidate, and CandidateName query the
fixed set.
*/
package models
