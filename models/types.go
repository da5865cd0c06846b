package models

import "time"

// Voter role constants
const (
	RoleVoter = "voter"
	RoleAdmin = "admin"
)

// Request types

type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CastVoteRequest struct {
	CandidateID string `json:"candidate_id"`
}

// Response types

type SessionResponse struct {
	Token       string `json:"token"`
	VoterID     string `json:"voter_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type CastVoteResponse struct {
	BallotID string `json:"ballot_id"`
	Message  string `json:"message"`
}

type VoteStatusResponse struct {
	HasVoted bool       `json:"has_voted"`
	VotedFor *string    `json:"voted_for,omitempty"`
	VotedAt  *time.Time `json:"voted_at,omitempty"`
}

type MeResponse struct {
	VoterID     string  `json:"voter_id"`
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name"`
	Role        string  `json:"role"`
	HasVoted    bool    `json:"has_voted"`
	VotedFor    *string `json:"voted_for,omitempty"`
}

type BallotListResponse struct {
	Ballots []Ballot `json:"ballots"`
	Count   int      `json:"count"`
}

// Domain types

type Voter struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	DisplayName  string     `json:"display_name"`
	PasswordHash string     `json:"-"` // Never expose in JSON
	Role         string     `json:"role"`
	HasVoted     bool       `json:"has_voted"`
	VotedFor     *string    `json:"voted_for,omitempty"`
	VotedAt      *time.Time `json:"voted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type Ballot struct {
	ID          string    `json:"id"`
	VoterID     string    `json:"voter_id"`
	VoterEmail  string    `json:"voter_email"`
	VoterName   string    `json:"voter_name"`
	CandidateID string    `json:"candidate_id"`
	CastAt      time.Time `json:"cast_at"`
}

// Session is the authenticated identity attached to a request. It is built
// by the session middleware from the voter record, never from global state.
type Session struct {
	VoterID     string
	Email       string
	DisplayName string
	Role        string
}

// Tally types

type CandidateCount struct {
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	Votes       int     `json:"votes"`
	Percent     float64 `json:"percent"`
}

type Stats struct {
	Candidates      []CandidateCount `json:"candidates"`
	Total           int              `json:"total"`
	RegisteredUsers int              `json:"registered_users"`
	VotedUsers      int              `json:"voted_users"`
	Turnout         float64          `json:"turnout"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
