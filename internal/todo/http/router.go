package http

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/todolist/internal/todo/service"
	"github.com/aussiebroadwan/todolist/internal/todo/store"
	"github.com/aussiebroadwan/todolist/pkg/httpx"
	"github.com/aussiebroadwan/todolist/pkg/sessionx"
	"github.com/aussiebroadwan/todolist/pkg/slogx"

	_ "github.com/aussiebroadwan/todolist/api/todo" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	Sessions    *sessionx.Manager
	AuthService *service.AuthService
	TodoService *service.TodoService

	// StaticFS holds the SPA build. Nil disables the frontend.
	StaticFS fs.FS
	// AllowedOrigins for credentialed cross-origin API calls.
	AllowedOrigins []string
}

func NewRouter(
	buildVersion string,
	st store.Store,
	sessions *sessionx.Manager,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		Sessions:     sessions,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	api := http.NewServeMux()
	r.registerAuth(api)
	r.registerTodos(api)

	// Anything else under /api/ is a protected miss.
	api.Handle("/api/", httpx.RequireAuth(http.HandlerFunc(apiNotFound)))

	r.Mux.Handle("/api/", httpx.Chain(api,
		httpx.CORS(r.AllowedOrigins),
		r.Sessions.Middleware,
		r.identify,
	))

	r.registerSystem()
	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("/", &SPAHandler{FS: r.StaticFS})
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Todo List Service API
//	@version		0.1.0
//	@description	Multi-user todo list service. Users register or log in to obtain a session cookie,
//	@description	then manage their own todos. Every /api/ response uses the {success, message} envelope.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/todolist
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						JSESSIONID
//	@description				Opaque session cookie set by register and login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// identify binds the session's user id to the request context when the
// session names an existing, active user.
func (r *Router) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		if _, ok := httpx.UserIDFromContext(ctx); ok {
			next.ServeHTTP(w, req)
			return
		}

		user, ok, err := r.AuthService.CurrentUser(ctx, sessionx.FromContext(ctx))
		if err != nil {
			slogx.FromContext(ctx).Warn("failed to resolve session user", "error", err)
		}
		if ok {
			ctx = httpx.WithUserID(ctx, user.ID)
			ctx = slogx.WithAttrs(ctx, slog.Int64("user_id", user.ID))
		}
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func (r *Router) registerAuth(mux *http.ServeMux) {
	h := &AuthHandler{AuthService: r.AuthService}

	// Public
	mux.HandleFunc("POST /api/auth/register", h.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", h.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", h.HandleLogout)
	mux.HandleFunc("GET /api/auth/me", h.HandleMe)
	mux.HandleFunc("GET /api/auth/check-username/{username}", h.HandleCheckUsername)
	mux.HandleFunc("GET /api/auth/check-email/{email}", h.HandleCheckEmail)

	// Authenticated
	mux.Handle("PUT /api/auth/profile", httpx.RequireAuth(http.HandlerFunc(h.HandleUpdateProfile)))
	mux.Handle("PUT /api/auth/change-password", httpx.RequireAuth(http.HandlerFunc(h.HandleChangePassword)))
}

func (r *Router) registerTodos(mux *http.ServeMux) {
	h := &TodosHandler{TodoService: r.TodoService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.RequireAuth(fn)
	}

	mux.Handle("GET /api/todos", secured(h.HandleList))
	mux.Handle("POST /api/todos", secured(h.HandleCreate))
	mux.Handle("GET /api/todos/stats", secured(h.HandleStats))
	mux.Handle("GET /api/todos/{id}", secured(h.HandleGet))
	mux.Handle("PUT /api/todos/{id}", secured(h.HandleUpdate))
	mux.Handle("DELETE /api/todos/{id}", secured(h.HandleDelete))
	mux.Handle("PUT /api/todos/{id}/toggle", secured(h.HandleToggle))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Sessions.Store))
}

func apiNotFound(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteError(w, http.StatusNotFound, "Not found")
}
