package http

import (
	"context"
	"net/http"

	"github.com/sellora/todone/internal/todo/domain"
	"github.com/sellora/todone/pkg/httpx"
	"github.com/sellora/todone/pkg/slogx"
)

type sessionCtxKey struct{}

// withSession resolves the session cookie once per request and stores the
// result in the context. Downstream handlers read it via currentSession; a
// bad or stale cookie simply means no session.
func (rt *Router) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		sess, ok, err := rt.SessionService.Resolve(r.Context(), token)
		if err != nil {
			slogx.FromContext(r.Context()).Error("session resolve failed", "error", err)
		}
		if ok {
			ctx := context.WithValue(r.Context(), sessionCtxKey{}, sess)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// currentSession returns the resolved session for the request, if any.
func currentSession(ctx context.Context) (domain.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey{}).(domain.Session)
	return sess, ok
}

// requireAuth gates protected pages. Anonymous requests are bounced to the
// login page.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentSession(r.Context()); !ok {
			httpx.SeeOther(w, r, "/login")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// redirectIfAuthed keeps logged-in users off the login and registration
// pages.
func redirectIfAuthed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentSession(r.Context()); ok {
			httpx.SeeOther(w, r, "/dashboard")
			return
		}
		next.ServeHTTP(w, r)
	})
}
