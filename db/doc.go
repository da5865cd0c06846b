// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and store queries.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - voter: One record per registered voter with role and vote status
  - ballot: Insert-only cast-vote records, one per voter

# Constraints

The single-vote invariant is enforced at the storage layer twice:

  - voter.has_voted is flipped by a conditional UPDATE (see package voting)
  - ballot.voter_id is UNIQUE, so a second insert for the same voter fails
    even if the conditional update were bypassed

voter also carries CHECK (has_voted = (voted_for IS NOT NULL)) so the two
vote fields cannot drift apart.

# Store Queries

Reads and writes over the two collections:

	v, err := db.GetVoter(ctx, conn, id)
	v, err := db.GetVoterByEmail(ctx, conn, email)
	err := db.InsertVoter(ctx, conn, voter)
	voters, err := db.ListVoters(ctx, conn)
	ballots, err := db.ListBallots(ctx, conn)   // newest first

GetVoter and GetVoterByEmail return sql.ErrNoRows for missing records.

# Provisioning

PromoteAdmin grants the admin role to an existing account:

	promoted, err := db.PromoteAdmin(ctx, conn, email)

Called from main at startup for the configured bootstrap admin.
*/
package db
