package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

const (
	sessionCookieName = "admin_session"
	sessionValue      = "authenticated"
	sessionMaxAge     = 24 * 60 * 60
)

// AdminAuth implements the single-password admin session: a shared password
// check on login, then an opaque http-only cookie on every admin request.
type AdminAuth struct {
	password string
	secure   bool
}

func NewAdminAuth(password, env string) *AdminAuth {
	return &AdminAuth{
		password: password,
		secure:   env != "development",
	}
}

// VerifyPassword compares in constant time. An unset password means admin
// access is disabled entirely.
func (a *AdminAuth) VerifyPassword(candidate string) bool {
	if a.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(a.password)) == 1
}

func (a *AdminAuth) IssueSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionValue,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *AdminAuth) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *AdminAuth) Authenticated(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return false
	}
	return cookie.Value == sessionValue
}

// Middleware rejects every request without a valid session cookie. The
// response is identical whatever the reason.
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.Authenticated(r) {
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": "unauthorized", "message": "unauthorized"},
	})
}
