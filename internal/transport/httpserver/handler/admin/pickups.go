package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	pickupsdomain "meal-train-go/internal/domain/pickups"
	"meal-train-go/internal/domain/validation"
	"meal-train-go/internal/locations"
)

type pickupRequest struct {
	PickupDate string `json:"pickupDate"`
	Location   string `json:"location"`
	Active     *bool  `json:"active"`
}

type pickupResponse struct {
	ID          string    `json:"id"`
	PickupDate  string    `json:"pickupDate"`
	Location    string    `json:"location"`
	DisplayText string    `json:"displayText"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toPickupResponse(p *pickupsdomain.Pickup) pickupResponse {
	return pickupResponse{
		ID:          p.ID,
		PickupDate:  p.PickupDate.Format("2006-01-02"),
		Location:    p.Location,
		DisplayText: locations.DisplayText(p.Location),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}

// parsePickupDate accepts the form's yyyy-mm-dd value. A zero time flows
// through to the service's required-field check.
func parsePickupDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (h *Handlers) ListPickups(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Pickups.List(r.Context())
	if err != nil {
		h.log.InternalError("admin.pickups.list: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch pickup locations")
		return
	}

	out := make([]pickupResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toPickupResponse(&rows[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) CreatePickup(w http.ResponseWriter, r *http.Request) {
	var req pickupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.BusinessError("admin.pickups.create: bad request body", err)
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body")
		return
	}

	date, err := parsePickupDate(req.PickupDate)
	if err != nil {
		h.log.BusinessError("admin.pickups.create: bad date", err)
		writeError(w, http.StatusBadRequest, "validation_error", "Invalid pickup date format, expected YYYY-MM-DD")
		return
	}

	pickup, err := h.Pickups.Create(r.Context(), pickupsdomain.CreatePickupInput{
		PickupDate: date,
		Location:   req.Location,
	})
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			h.log.BusinessError("admin.pickups.create: validation failed", err)
			writeError(w, http.StatusBadRequest, "validation_error", verr.Message)
		case errors.Is(err, pickupsdomain.ErrPickupConflict):
			h.log.BusinessError("admin.pickups.create: duplicate", err)
			writeError(w, http.StatusConflict, "conflict", "A pickup location for this date and location already exists")
		default:
			h.log.InternalError("admin.pickups.create: failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to create pickup location")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toPickupResponse(pickup))
}

func (h *Handlers) UpdatePickup(w http.ResponseWriter, r *http.Request) {
	var req pickupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.BusinessError("admin.pickups.update: bad request body", err)
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body")
		return
	}

	date, err := parsePickupDate(req.PickupDate)
	if err != nil {
		h.log.BusinessError("admin.pickups.update: bad date", err)
		writeError(w, http.StatusBadRequest, "validation_error", "Invalid pickup date format, expected YYYY-MM-DD")
		return
	}

	pickup, err := h.Pickups.Update(r.Context(), pickupsdomain.UpdatePickupInput{
		ID:         chi.URLParam(r, "id"),
		PickupDate: date,
		Location:   req.Location,
		Active:     req.Active,
	})
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			h.log.BusinessError("admin.pickups.update: validation failed", err)
			writeError(w, http.StatusBadRequest, "validation_error", verr.Message)
		case errors.Is(err, pickupsdomain.ErrPickupConflict):
			h.log.BusinessError("admin.pickups.update: duplicate", err)
			writeError(w, http.StatusConflict, "conflict", "A pickup location for this date and location already exists")
		case errors.Is(err, pickupsdomain.ErrPickupNotFound):
			h.log.BusinessError("admin.pickups.update: not found", err)
			writeError(w, http.StatusNotFound, "not_found", "Pickup location not found")
		default:
			h.log.InternalError("admin.pickups.update: failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to update pickup location")
		}
		return
	}

	writeJSON(w, http.StatusOK, toPickupResponse(pickup))
}

func (h *Handlers) DeletePickup(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.Pickups.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, pickupsdomain.ErrPickupNotFound) {
			h.log.BusinessError("admin.pickups.delete: not found", err)
			writeError(w, http.StatusNotFound, "not_found", "Pickup location not found")
			return
		}
		h.log.InternalError("admin.pickups.delete: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to delete pickup location")
		return
	}

	message := "Pickup location deleted successfully"
	if outcome.Deactivated {
		message = "Pickup location has existing signups and was deactivated instead of deleted"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"deactivated": outcome.Deactivated,
		"message":     message,
	})
}
