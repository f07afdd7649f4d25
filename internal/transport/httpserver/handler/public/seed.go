package public

import (
	"net/http"

	pickupsdomain "meal-train-go/internal/domain/pickups"
	"meal-train-go/internal/locations"
)

type seedResultResponse struct {
	Action     string `json:"action"`
	ID         string `json:"id"`
	PickupDate string `json:"pickupDate"`
	Location   string `json:"location"`
}

// SeedPickupLocations creates every (date, hub) slot from the configured
// schedule, skipping pairs that already exist.
func (h *Handlers) SeedPickupLocations(w http.ResponseWriter, r *http.Request) {
	results, err := h.Pickups.Seed(r.Context())
	if err != nil {
		h.log.InternalError("seed: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to seed pickup locations")
		return
	}

	created := 0
	out := make([]seedResultResponse, 0, len(results))
	for _, res := range results {
		if res.Action == pickupsdomain.SeedCreated {
			created++
		}
		out = append(out, seedResultResponse{
			Action:     res.Action,
			ID:         res.ID,
			PickupDate: res.PickupDate.Format("2006-01-02"),
			Location:   res.Location,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"created": created,
		"total":   len(results),
		"results": out,
	})
}

// GetSeedStatus lists existing slots alongside the schedule that seeding
// would fill.
func (h *Handlers) GetSeedStatus(w http.ResponseWriter, r *http.Request) {
	existing, err := h.Pickups.List(r.Context())
	if err != nil {
		h.log.InternalError("seed.status: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch pickup locations")
		return
	}

	dates := make([]string, 0, len(locations.AllowedDates))
	dates = append(dates, locations.AllowedDates...)

	writeJSON(w, http.StatusOK, map[string]any{
		"existing":         toPickupResponses(existing),
		"allowedDates":     dates,
		"allowedLocations": locations.Keys(),
	})
}

// ClearUnreferencedPickupLocations removes slots no signup points at. It
// refuses to run without an explicit confirmation flag.
func (h *Handlers) ClearUnreferencedPickupLocations(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "yes" {
		writeJSON(w, http.StatusOK, map[string]any{
			"warning": "This deletes every pickup location without signups. Re-run with ?confirm=yes to proceed.",
		})
		return
	}

	removed, err := h.Pickups.Prune(r.Context())
	if err != nil {
		h.log.InternalError("seed.clear: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to clear pickup locations")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"deleted": len(removed),
		"removed": toPickupResponses(removed),
	})
}
