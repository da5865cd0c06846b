// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/pmr-election/cliparse"
	"github.com/danielhkuo/pmr-election/db"
	"github.com/danielhkuo/pmr-election/export"
	"github.com/danielhkuo/pmr-election/middleware"
	"github.com/danielhkuo/pmr-election/models"
	"github.com/danielhkuo/pmr-election/tally"
	"github.com/danielhkuo/pmr-election/voting"
)

type AdminHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	voting *voting.Service
	tally  *tally.Service
}

func NewAdminHandler(conn *sql.DB, cfg cliparse.Config, votingSvc *voting.Service, tallySvc *tally.Service) *AdminHandler {
	return &AdminHandler{db: conn, cfg: cfg, voting: votingSvc, tally: tallySvc}
}

// Stats handles GET /admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.tally.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

// StreamStats handles GET /admin/stats/stream as server-sent events.
// Sends a snapshot immediately, then one event per tally broadcast until
// the client disconnects. The subscription is released on return.
func (h *AdminHandler) StreamStats(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	stats, err := h.tally.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database error")
		return
	}

	ch, cancel := h.tally.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeStatsEvent(w, stats); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case stats, ok := <-ch:
			if !ok {
				return
			}
			if err := writeStatsEvent(w, stats); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeStatsEvent(w http.ResponseWriter, stats models.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		slog.Error("failed to encode stats event", "error", err)
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}

// ListBallots handles GET /admin/ballots
func (h *AdminHandler) ListBallots(w http.ResponseWriter, r *http.Request) {
	ballots, err := db.ListBallots(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to list ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BallotListResponse{
		Ballots: ballots,
		Count:   len(ballots),
	})
}

// Export handles GET /admin/export
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	stats, err := h.tally.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database error")
		return
	}

	ballots, err := db.ListBallots(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to list ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database error")
		return
	}

	filename := "hasil-pemilihan-pmr-" + time.Now().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := export.WriteResults(w, h.cfg.ReportTitle, h.cfg.ReportSubtitle, stats, ballots); err != nil {
		slog.Error("failed to write results export", "error", err)
	}
}

// Audit handles GET /admin/audit
func (h *AdminHandler) Audit(w http.ResponseWriter, r *http.Request) {
	report, err := h.voting.Audit(r.Context())
	if err != nil {
		slog.Error("failed to run audit", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database error")
		return
	}

	if !report.Clean() {
		slog.Warn("vote store inconsistency detected",
			"voted_without_ballot", len(report.VotedWithoutBallot),
			"ballot_without_flag", len(report.BallotWithoutFlag),
			"candidate_mismatch", len(report.CandidateMismatch),
		)
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"consistent": report.Clean(),
		"report":     report,
	})
}
