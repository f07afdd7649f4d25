package public

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	mealsdomain "meal-train-go/internal/domain/meals"
)

type cancellationSummaryResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	MealDescription  string `json:"mealDescription"`
	PickupDate       string `json:"pickupDate"`
	Location         string `json:"location"`
	AlreadyCancelled bool   `json:"alreadyCancelled"`
}

func (h *Handlers) GetCancellation(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	summary, err := h.Meals.LookupCancellation(r.Context(), token)
	if err != nil {
		if errors.Is(err, mealsdomain.ErrMealNotFound) {
			h.log.BusinessError("cancel.lookup: not found", err)
			writeError(w, http.StatusNotFound, "not_found", "Invalid cancellation link")
			return
		}
		h.log.InternalError("cancel.lookup: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch meal details")
		return
	}

	writeJSON(w, http.StatusOK, cancellationSummaryResponse{
		ID:               summary.ID,
		Name:             summary.Name,
		MealDescription:  summary.MealDescription,
		PickupDate:       summary.PickupDate.Format("2006-01-02"),
		Location:         summary.Location,
		AlreadyCancelled: summary.AlreadyCancelled,
	})
}

func (h *Handlers) PostCancellation(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	message, err := h.Meals.Cancel(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, mealsdomain.ErrMealNotFound):
			h.log.BusinessError("cancel: not found", err)
			writeError(w, http.StatusNotFound, "not_found", "Invalid cancellation link")
		case errors.Is(err, mealsdomain.ErrAlreadyCancelled):
			h.log.BusinessError("cancel: already cancelled", err)
			writeError(w, http.StatusBadRequest, "already_cancelled", "This meal has already been cancelled")
		default:
			h.log.InternalError("cancel: failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to cancel meal")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": message,
	})
}
