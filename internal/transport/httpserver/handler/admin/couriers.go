package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	couriersdomain "meal-train-go/internal/domain/couriers"
	"meal-train-go/internal/domain/validation"
)

type courierRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Locations []string `json:"locations"`
	Active    *bool    `json:"active"`
}

type courierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Locations []string  `json:"locations"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCourierResponse(c *couriersdomain.Courier) courierResponse {
	return courierResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Locations: []string(c.Locations),
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
	}
}

func (h *Handlers) ListCouriers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Couriers.List(r.Context())
	if err != nil {
		h.log.InternalError("admin.couriers.list: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch couriers")
		return
	}

	out := make([]courierResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toCourierResponse(&rows[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) CreateCourier(w http.ResponseWriter, r *http.Request) {
	var req courierRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.BusinessError("admin.couriers.create: bad request body", err)
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body")
		return
	}

	courier, err := h.Couriers.Create(r.Context(), couriersdomain.CreateCourierInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Locations: req.Locations,
	})
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			h.log.BusinessError("admin.couriers.create: validation failed", err)
			writeError(w, http.StatusBadRequest, "validation_error", verr.Message)
			return
		}
		h.log.InternalError("admin.couriers.create: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to create courier")
		return
	}

	writeJSON(w, http.StatusCreated, toCourierResponse(courier))
}

func (h *Handlers) UpdateCourier(w http.ResponseWriter, r *http.Request) {
	var req courierRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.BusinessError("admin.couriers.update: bad request body", err)
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body")
		return
	}

	courier, err := h.Couriers.Update(r.Context(), couriersdomain.UpdateCourierInput{
		ID:        chi.URLParam(r, "id"),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Locations: req.Locations,
		Active:    req.Active,
	})
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			h.log.BusinessError("admin.couriers.update: validation failed", err)
			writeError(w, http.StatusBadRequest, "validation_error", verr.Message)
		case errors.Is(err, couriersdomain.ErrCourierNotFound):
			h.log.BusinessError("admin.couriers.update: not found", err)
			writeError(w, http.StatusNotFound, "not_found", "Courier not found")
		default:
			h.log.InternalError("admin.couriers.update: failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to update courier")
		}
		return
	}

	writeJSON(w, http.StatusOK, toCourierResponse(courier))
}

func (h *Handlers) DeleteCourier(w http.ResponseWriter, r *http.Request) {
	if err := h.Couriers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, couriersdomain.ErrCourierNotFound) {
			h.log.BusinessError("admin.couriers.delete: not found", err)
			writeError(w, http.StatusNotFound, "not_found", "Courier not found")
			return
		}
		h.log.InternalError("admin.couriers.delete: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to delete courier")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Courier deleted successfully",
	})
}
