package public

import (
	"errors"
	"net/http"

	mealsdomain "meal-train-go/internal/domain/meals"
	"meal-train-go/internal/domain/validation"
)

type createMealRequest struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	PickupLocationID string `json:"pickupLocationId"`
	MealDescription  string `json:"mealDescription"`
	FreezerFriendly  bool   `json:"freezerFriendly"`
	NoteToCourier    string `json:"noteToCourier"`
	CanBringToSalem  bool   `json:"canBringToSalem"`
}

type createMealResponse struct {
	Success bool   `json:"success"`
	MealID  string `json:"mealId"`
	Message string `json:"message"`
}

type publicMealEntry struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	MealDescription string `json:"mealDescription"`
	FreezerFriendly bool   `json:"freezerFriendly"`
	PickupDate      string `json:"pickupDate"`
	Location        string `json:"location"`
	Cancelled       bool   `json:"cancelled"`
}

// ListMeals returns all non-past signups grouped by hub key; every hub is
// present so the page can render empty sections.
func (h *Handlers) ListMeals(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.Meals.ListUpcomingGrouped(r.Context())
	if err != nil {
		h.log.InternalError("meals.list: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch meals")
		return
	}

	response := make(map[string][]publicMealEntry, len(grouped))
	for location, rows := range grouped {
		entries := make([]publicMealEntry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, publicMealEntry{
				ID:              row.ID,
				Name:            row.Name,
				MealDescription: row.MealDescription,
				FreezerFriendly: row.FreezerFriendly,
				PickupDate:      row.PickupDate.Format("2006-01-02"),
				Location:        row.Location,
				Cancelled:       row.Cancelled(),
			})
		}
		response[location] = entries
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req createMealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Meals.CreateSignup(r.Context(), mealsdomain.CreateSignupInput{
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		PickupLocationID: req.PickupLocationID,
		MealDescription:  req.MealDescription,
		FreezerFriendly:  req.FreezerFriendly,
		NoteToCourier:    req.NoteToCourier,
		CanBringToSalem:  req.CanBringToSalem,
	})
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			h.log.BusinessError("meals.create: validation failed", err)
			writeError(w, http.StatusBadRequest, "invalid_request", verr.Message)
		case errors.Is(err, mealsdomain.ErrPickupUnavailable):
			h.log.BusinessError("meals.create: pickup unavailable", err, "pickup_location_id", req.PickupLocationID)
			writeError(w, http.StatusBadRequest, "invalid_request", "Invalid or inactive pickup location")
		default:
			h.log.InternalError("meals.create: create failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to create meal signup")
		}
		return
	}

	writeJSON(w, http.StatusOK, createMealResponse{
		Success: true,
		MealID:  result.MealID,
		Message: result.Message,
	})
}
