package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sellora/todone/internal/todo/domain"
	"github.com/sellora/todone/internal/todo/service"
	"github.com/sellora/todone/pkg/httpx"
	"github.com/sellora/todone/pkg/slogx"
)

// genericFailure is shown whenever the store misbehaves. Raw diagnostics go
// to the log, never to the page.
const genericFailure = "Something went wrong. Please try again."

// AuthHandler serves the login and registration pages plus the logout
// action.
type AuthHandler struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
}

// HandleLoginGet renders the login form, draining the pre-session flash
// cookie a fresh registration leaves behind.
func (h *AuthHandler) HandleLoginGet(w http.ResponseWriter, r *http.Request) {
	page := loginPage{}
	if f, ok := popFlashCookie(w, r); ok {
		page.Flash = &f
	}
	render(w, r, http.StatusOK, "login.html", page)
}

// HandleLoginPost verifies credentials and establishes a session. A failed
// attempt re-renders the form with the username preserved; unknown user and
// wrong password are indistinguishable.
func (h *AuthHandler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		render(w, r, http.StatusBadRequest, "login.html", loginPage{Error: "Invalid form submission."})
		return
	}
	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")

	identity, err := h.AuthService.Login(ctx, username, password)
	if err != nil {
		var authErr *service.AuthError
		if errors.As(err, &authErr) {
			render(w, r, http.StatusOK, "login.html", loginPage{
				Error:    "Invalid username or password.",
				Username: username,
			})
			return
		}
		slogx.FromContext(ctx).Error("login failed", "error", err)
		render(w, r, http.StatusInternalServerError, "login.html", loginPage{
			Error:    genericFailure,
			Username: username,
		})
		return
	}

	token, err := h.SessionService.Issue(ctx, identity)
	if err != nil {
		slogx.FromContext(ctx).Error("session issue failed", "error", err)
		render(w, r, http.StatusInternalServerError, "login.html", loginPage{
			Error:    genericFailure,
			Username: username,
		})
		return
	}

	setSessionCookie(w, r, token)
	httpx.SeeOther(w, r, "/dashboard")
}

// HandleRegisterGet renders the registration form.
func (h *AuthHandler) HandleRegisterGet(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "register.html", registerPage{})
}

// HandleRegisterPost creates the account and bounces to the login page with
// a success flash. Validation and conflict errors re-render the form with
// the entered email and username intact.
func (h *AuthHandler) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		render(w, r, http.StatusBadRequest, "register.html", registerPage{Error: "Invalid form submission."})
		return
	}
	email := strings.TrimSpace(r.PostForm.Get("email"))
	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")

	if _, err := h.AuthService.Register(ctx, email, username, password); err != nil {
		page := registerPage{Email: email, Username: username}

		var (
			validationErr *service.ValidationError
			conflictErr   *service.ConflictError
		)
		switch {
		case errors.As(err, &validationErr):
			page.Error = validationErr.Reason
			render(w, r, http.StatusOK, "register.html", page)
		case errors.As(err, &conflictErr):
			page.Error = conflictErr.Reason
			render(w, r, http.StatusOK, "register.html", page)
		default:
			slogx.FromContext(ctx).Error("registration failed", "error", err)
			page.Error = genericFailure
			render(w, r, http.StatusInternalServerError, "register.html", page)
		}
		return
	}

	setFlashCookie(w, r, domain.Flash{Kind: domain.FlashSuccess, Message: "Account created successfully!"})
	httpx.SeeOther(w, r, "/login")
}

// HandleLogout destroys the session and clears the cookie. Logout is
// idempotent.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionService.Destroy(r.Context(), sessionToken(r)); err != nil {
		slogx.FromContext(r.Context()).Error("session destroy failed", "error", err)
	}
	clearSessionCookie(w, r)
	httpx.SeeOther(w, r, "/login")
}
