package http

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/sellora/todone/internal/todo/domain"
)

const (
	sessionCookieName = "todone_session"
	flashCookieName   = "todone_flash"
)

// sessionToken pulls the raw session token from the request cookie, empty
// when absent.
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setSessionCookie binds the token to the browser session. No Max-Age: the
// cookie dies with the browser, the server-side TTL is the hard bound.
func setSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
}

func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
}

// setFlashCookie queues a one-shot notification for a visitor with no
// session yet (registration success lands on the login page before any
// session exists).
func setFlashCookie(w http.ResponseWriter, r *http.Request, f domain.Flash) {
	value := base64.RawURLEncoding.EncodeToString([]byte(string(f.Kind) + ":" + f.Message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
}

// popFlashCookie reads and expires the pre-session flash cookie in one step.
func popFlashCookie(w http.ResponseWriter, r *http.Request) (domain.Flash, bool) {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return domain.Flash{}, false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return domain.Flash{}, false
	}
	kind, message, ok := strings.Cut(string(raw), ":")
	if !ok || message == "" {
		return domain.Flash{}, false
	}

	switch domain.FlashKind(kind) {
	case domain.FlashSuccess, domain.FlashError:
		return domain.Flash{Kind: domain.FlashKind(kind), Message: message}, true
	default:
		return domain.Flash{}, false
	}
}
