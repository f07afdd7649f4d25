package public

import (
	"net/http"
	"time"

	pickupsdomain "meal-train-go/internal/domain/pickups"
	"meal-train-go/internal/locations"
)

type pickupLocationResponse struct {
	ID          string    `json:"id"`
	PickupDate  string    `json:"pickupDate"`
	Location    string    `json:"location"`
	DisplayText string    `json:"displayText"`
	Address     string    `json:"address"`
	Note        string    `json:"note,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListPickupLocations serves the signup form's choices: active locations
// dated today or later, decorated with registry metadata.
func (h *Handlers) ListPickupLocations(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Pickups.ListAvailable(r.Context())
	if err != nil {
		h.log.InternalError("pickups.list: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch pickup locations")
		return
	}

	writeJSON(w, http.StatusOK, toPickupResponses(rows))
}

func toPickupResponses(rows []pickupsdomain.Pickup) []pickupLocationResponse {
	response := make([]pickupLocationResponse, 0, len(rows))
	for _, row := range rows {
		entry := pickupLocationResponse{
			ID:          row.ID,
			PickupDate:  row.PickupDate.Format("2006-01-02"),
			Location:    row.Location,
			DisplayText: locations.DisplayText(row.Location),
			Address:     locations.Address(row.Location),
			Active:      row.Active,
			CreatedAt:   row.CreatedAt,
		}
		if info, ok := locations.Get(row.Location); ok {
			entry.Note = info.Note
		}
		response = append(response, entry)
	}
	return response
}
