package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	mealsdomain "meal-train-go/internal/domain/meals"
	"meal-train-go/internal/locations"
)

type adminMealResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
	MealDescription string     `json:"mealDescription"`
	FreezerFriendly bool       `json:"freezerFriendly"`
	NoteToCourier   string     `json:"noteToCourier,omitempty"`
	CanBringToSalem bool       `json:"canBringToSalem"`
	PickupDate      string     `json:"pickupDate"`
	Location        string     `json:"location"`
	DisplayText     string     `json:"displayText"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func toAdminMealResponse(row *mealsdomain.SignupWithPickup) adminMealResponse {
	entry := adminMealResponse{
		ID:              row.ID,
		Name:            row.Name,
		Phone:           row.Phone,
		Email:           row.Email,
		MealDescription: row.MealDescription,
		FreezerFriendly: row.FreezerFriendly,
		CanBringToSalem: row.CanBringToSalem,
		PickupDate:      row.PickupDate.Format("2006-01-02"),
		Location:        row.Location,
		DisplayText:     locations.DisplayText(row.Location),
		CancelledAt:     row.CancelledAt,
		CreatedAt:       row.CreatedAt,
	}
	if row.NoteToCourier != nil {
		entry.NoteToCourier = *row.NoteToCourier
	}
	return entry
}

// ListMeals serves the admin signup table with optional ?location= and
// ?status= (active, cancelled, all) filters. No status filter returns
// every row, cancelled included.
func (h *Handlers) ListMeals(w http.ResponseWriter, r *http.Request) {
	filter := mealsdomain.ListFilter{
		Location: r.URL.Query().Get("location"),
		Status:   mealsdomain.StatusAll,
	}

	switch status := r.URL.Query().Get("status"); status {
	case "", string(mealsdomain.StatusAll):
	case string(mealsdomain.StatusActive):
		filter.Status = mealsdomain.StatusActive
	case string(mealsdomain.StatusCancelled):
		filter.Status = mealsdomain.StatusCancelled
	default:
		h.log.BusinessError("admin.meals.list: bad status filter", nil, "status", status)
		writeError(w, http.StatusBadRequest, "validation_error", "Invalid status filter, expected active, cancelled, or all")
		return
	}

	if filter.Location != "" && !locations.IsValid(filter.Location) {
		h.log.BusinessError("admin.meals.list: bad location filter", nil, "location", filter.Location)
		writeError(w, http.StatusBadRequest, "validation_error", "Invalid location filter")
		return
	}

	rows, err := h.Meals.List(r.Context(), filter)
	if err != nil {
		h.log.InternalError("admin.meals.list: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch meal signups")
		return
	}

	out := make([]adminMealResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toAdminMealResponse(&rows[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteMeal permanently removes a signup row, unlike public cancellation
// which only soft-deletes.
func (h *Handlers) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	if err := h.Meals.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, mealsdomain.ErrMealNotFound) {
			h.log.BusinessError("admin.meals.delete: not found", err)
			writeError(w, http.StatusNotFound, "not_found", "Meal signup not found")
			return
		}
		h.log.InternalError("admin.meals.delete: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to delete meal signup")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Meal signup deleted successfully",
	})
}
