// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"math"

	"github.com/danielhkuo/pmr-election/models"
)

// ComputeStats derives aggregate counts from voter and ballot snapshots.
// Pure function: no side effects, no store access.
//
// In a consistent store VotedUsers == Total (each ballot corresponds to
// exactly one voted user); a divergence points at a half-applied vote and
// is what the voting audit exists to catch.
func ComputeStats(voters []models.Voter, ballots []models.Ballot) models.Stats {
	counts := make(map[string]int)
	for _, b := range ballots {
		counts[b.CandidateID]++
	}

	stats := models.Stats{
		Total:           len(ballots),
		RegisteredUsers: len(voters),
	}
	for _, v := range voters {
		if v.HasVoted {
			stats.VotedUsers++
		}
	}

	for _, c := range models.Candidates {
		n := counts[c.ID]
		stats.Candidates = append(stats.Candidates, models.CandidateCount{
			CandidateID: c.ID,
			Name:        c.Name,
			Votes:       n,
			Percent:     percent(n, stats.Total),
		})
	}

	stats.Turnout = percent(stats.VotedUsers, stats.RegisteredUsers)
	return stats
}

// percent returns part/whole as a percentage rounded to one decimal,
// and 0 when whole is zero (never NaN).
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}
