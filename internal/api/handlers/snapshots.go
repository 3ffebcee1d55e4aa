package handlers

import (
	"net/http"

	"github.com/assetdash/asset-dashboard-backend/internal/api/response"
	"github.com/assetdash/asset-dashboard-backend/internal/apperrors"
	"github.com/assetdash/asset-dashboard-backend/internal/repository"
	"github.com/assetdash/asset-dashboard-backend/internal/service"
)

// SnapshotHandler handles HTTP requests for the valuation snapshot job.
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler with the provided service dependency.
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
	}
}

// RunSnapshot handles POST requests to trigger the daily valuation snapshot
// outside its schedule. Re-running on the same date overwrites that date's
// records.
//
// Endpoint: POST /api/snapshots/run
// Response: 200 OK with the recorded DailySummary
// Error: 500 Internal Server Error if the snapshot fails
func (h *SnapshotHandler) RunSnapshot(w http.ResponseWriter, r *http.Request) {
	summary, err := h.snapshotService.RunDailySnapshot(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRecordSnapshot.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// BackfillBenchmarks handles POST requests to seed historical benchmark
// closes over a date range.
//
// Endpoint: POST /api/snapshots/benchmarks/backfill?start=YYYY-MM-DD&end=YYYY-MM-DD
// Response: 204 No Content
// Error: 400 Bad Request if a date parameter is missing or malformed
// Error: 500 Internal Server Error if a benchmark fetch fails
func (h *SnapshotHandler) BackfillBenchmarks(w http.ResponseWriter, r *http.Request) {
	start, err := repository.ParseTime(r.URL.Query().Get("start"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid start date", err.Error())
		return
	}
	end, err := repository.ParseTime(r.URL.Query().Get("end"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid end date", err.Error())
		return
	}
	if end.Before(start) {
		response.RespondError(w, http.StatusBadRequest, "end date before start date", "")
		return
	}

	if err := h.snapshotService.BackfillBenchmarks(start, end); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveBenchmark.Error(), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
