package admin

import "net/http"

type loginRequest struct {
	Password string `json:"password"`
}

// Login checks the shared admin password and issues the session cookie. A
// wrong password and a disabled admin account get the same answer.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.BusinessError("admin.login: bad request body", err)
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body")
		return
	}

	if !h.Auth.VerifyPassword(req.Password) {
		h.log.BusinessError("admin.login: invalid password", nil)
		writeError(w, http.StatusUnauthorized, "unauthorized", "Invalid password")
		return
	}

	h.Auth.IssueSession(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Auth.ClearSession(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Session lets the admin UI probe whether its cookie is still valid.
func (h *Handlers) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": h.Auth.Authenticated(r),
	})
}
