// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/danielhkuo/pmr-election/models"
)

// Timestamp layout of the Waktu column, dd/mm/yyyy as the report's
// Indonesian readers expect.
const timeLayout = "02/01/2006 15:04:05"

// WriteResults renders the election report as CSV: title rows, a summary
// block, then one row per ballot under a Nama/Email/Pilihan/Waktu header.
func WriteResults(w io.Writer, title, subtitle string, stats models.Stats, ballots []models.Ballot) error {
	rows := [][]string{
		{title},
		{subtitle},
		{""},
		{"Ringkasan Hasil:"},
	}

	for _, c := range stats.Candidates {
		rows = append(rows, []string{
			fmt.Sprintf("%s: %d suara (%s%%)", c.Name, c.Votes, formatPercent(c.Percent)),
		})
	}
	rows = append(rows,
		[]string{fmt.Sprintf("Total Suara: %d", stats.Total)},
		[]string{fmt.Sprintf("Tingkat Partisipasi: %s%%", formatPercent(stats.Turnout))},
		[]string{""},
		[]string{"Detail Pemilih:"},
		[]string{"Nama", "Email", "Pilihan", "Waktu"},
	)

	for _, b := range ballots {
		rows = append(rows, []string{
			b.VoterName,
			b.VoterEmail,
			models.CandidateName(b.CandidateID),
			b.CastAt.Format(timeLayout),
		})
	}

	cw := csv.NewWriter(w)
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatPercent renders a percentage with exactly one decimal ("66.7").
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
