// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/pmr-election/db"
	"github.com/danielhkuo/pmr-election/models"
)

const snapshotTimeout = 5 * time.Second

// Service loads tally snapshots from the store and fans them out through
// its broker.
type Service struct {
	db     *sql.DB
	broker *Broker
}

func NewService(conn *sql.DB, broker *Broker) *Service {
	return &Service{db: conn, broker: broker}
}

// Snapshot reads both collections and computes current stats.
func (s *Service) Snapshot(ctx context.Context) (models.Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	voters, err := db.ListVoters(ctx, s.db)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to list voters: %w", err)
	}
	ballots, err := db.ListBallots(ctx, s.db)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to list ballots: %w", err)
	}

	return ComputeStats(voters, ballots), nil
}

// Subscribe registers a live-update listener. See Broker.Subscribe.
func (s *Service) Subscribe() (<-chan models.Stats, func()) {
	return s.broker.Subscribe()
}

// Broadcast recomputes stats and pushes them to all subscribers. Called
// after every mutating operation (signup, cast). A failed recompute only
// skips the push - subscribers keep their last snapshot and the next
// mutation retries.
func (s *Service) Broadcast(ctx context.Context) {
	stats, err := s.Snapshot(ctx)
	if err != nil {
		slog.Warn("tally broadcast skipped", "error", err)
		return
	}
	s.broker.Publish(stats)
}
