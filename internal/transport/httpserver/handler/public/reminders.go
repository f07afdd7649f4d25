package public

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

type reminderStatsResponse struct {
	PickupLocations      int `json:"pickupLocations"`
	RemindersSent        int `json:"remindersSent"`
	CourierSummariesSent int `json:"courierSummariesSent"`
}

// SendReminders runs the next-day reminder sweep. It is meant to be hit by an
// external cron trigger and is gated by a bearer secret when one is configured.
func (h *Handlers) SendReminders(w http.ResponseWriter, r *http.Request) {
	if h.cronSecret != "" {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.cronSecret)) != 1 {
			h.log.BusinessError("reminders: bad cron secret", nil)
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}
	}

	stats, err := h.Reminders.SendReminders(r.Context())
	if err != nil {
		h.log.InternalError("reminders: sweep failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to send reminders")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"date":    stats.Date,
		"stats": reminderStatsResponse{
			PickupLocations:      stats.PickupLocations,
			RemindersSent:        stats.RemindersSent,
			CourierSummariesSent: stats.CourierSummariesSent,
		},
	})
}
