// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally derives vote counts and turnout from voters and ballots.

# Computation

ComputeStats is a pure function over snapshots of the two collections:

	stats := tally.ComputeStats(voters, ballots)

Per-candidate counts and percentages, total ballots, registered and voted
user counts, and turnout. Percentages are rounded to one decimal and are 0
on empty input - never NaN.

# Delivery Modes

One-shot snapshot:

	stats, err := svc.Snapshot(ctx)

Continuous subscription:

	ch, cancel := svc.Subscribe()
	defer cancel()
	for stats := range ch { ... }

Broadcast recomputes and publishes after every mutating operation. Publish
never blocks on a slow subscriber: each subscription buffers exactly one
snapshot and newer snapshots replace unconsumed ones, so a listener always
observes the latest state. Cancel releases the subscription and closes the
channel deterministically.
*/
package tally
