package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sellora/todone/internal/todo/service"
	"github.com/sellora/todone/internal/todo/store"
	"github.com/sellora/todone/pkg/httpx"
	"github.com/sellora/todone/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	TaskService    *service.TaskService
	SessionService *service.SessionService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (rt *Router) ApplyRoutes() {
	rt.registerRoot()
	rt.registerAuth()
	rt.registerDashboard()
	rt.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (rt *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(rt.Mux, rt.middlewares...).ServeHTTP(w, req)
}

func (rt *Router) registerRoot() {
	// GET / - send the visitor wherever their session state points
	rt.Mux.Handle("GET /{$}",
		httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := currentSession(r.Context()); ok {
				httpx.SeeOther(w, r, "/dashboard")
				return
			}
			httpx.SeeOther(w, r, "/login")
		}),
			rt.withSession,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (rt *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:    rt.AuthService,
		SessionService: rt.SessionService,
	}

	// GET /login and /register - lenient rate limit (just display forms);
	// logged-in users are redirected straight to the dashboard
	rt.Mux.Handle("GET /login",
		httpx.Chain(http.HandlerFunc(h.HandleLoginGet),
			rt.withSession,
			redirectIfAuthed,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	rt.Mux.Handle("GET /register",
		httpx.Chain(http.HandlerFunc(h.HandleRegisterGet),
			rt.withSession,
			redirectIfAuthed,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /login - strict rate limit by IP + username form field to slow
	// brute force without letting one IP lock out everyone
	rt.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(h.HandleLoginPost),
			rt.withSession,
			redirectIfAuthed,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	// POST /register - strict rate limit by IP (public signup endpoint)
	rt.Mux.Handle("POST /register",
		httpx.Chain(http.HandlerFunc(h.HandleRegisterPost),
			rt.withSession,
			redirectIfAuthed,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	rt.Mux.Handle("POST /logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			rt.withSession,
			requireAuth,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (rt *Router) registerDashboard() {
	h := &DashboardHandler{
		TaskService:    rt.TaskService,
		SessionService: rt.SessionService,
	}

	secured := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler,
			rt.withSession,
			requireAuth,
			httpx.RateLimitByIP(httpx.LenientLimit),
		)
	}

	rt.Mux.Handle("GET /dashboard", secured(h.HandleDashboard))
	rt.Mux.Handle("POST /dashboard/tasks", secured(h.HandleCreate))
	rt.Mux.Handle("POST /dashboard/tasks/edit", secured(h.HandleEdit))
	rt.Mux.Handle("GET /dashboard/tasks/delete", secured(h.HandleDelete))
	rt.Mux.Handle("GET /dashboard/tasks/mark", secured(h.HandleMark))
}

func (rt *Router) registerSystem() {
	// Health check endpoint - lenient rate limit (monitoring may poll often)
	rt.Mux.Handle("GET /healthz",
		httpx.Chain(HealthzHandler(rt.startTime, rt.buildVersion, rt.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
