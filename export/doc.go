// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export renders election results as downloadable CSV.

# Layout

WriteResults emits, in order: the configured report title and subtitle,
a blank row, a "Ringkasan Hasil:" summary block (per-candidate counts with
percentages, total votes, turnout), a blank row, then a "Detail Pemilih:"
table with columns Nama, Email, Pilihan, Waktu - one row per ballot,
candidate shown by display name and cast time as dd/mm/yyyy hh:mm:ss.

	err := export.WriteResults(w, cfg.ReportTitle, cfg.ReportSubtitle, stats, ballots)

Formatting only; the numbers come from package tally and the ballots from
the store unchanged.
*/
package export
