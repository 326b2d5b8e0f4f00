package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/modboard/modboard/api/board" // Swagger docs
	"github.com/modboard/modboard/internal/board/service"
	"github.com/modboard/modboard/internal/board/store"
	"github.com/modboard/modboard/pkg/httpx"
	"github.com/modboard/modboard/pkg/jwtx"
	"github.com/modboard/modboard/pkg/slogx"
)

// RateLimits are the profiles applied per route group.
type RateLimits struct {
	Strict   httpx.RateLimitConfig // sign-in
	Moderate httpx.RateLimitConfig // writes
	Lenient  httpx.RateLimitConfig // reads and probes
}

// DefaultRateLimits uses the httpx profiles.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		Strict:   httpx.StrictLimit,
		Moderate: httpx.ModerateLimit,
		Lenient:  httpx.LenientLimit,
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	signer       jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	validate     *validator.Validate

	Limits         RateLimits
	Authorizer     *service.Authorizer
	AuthService    *service.AuthService
	PostService    *service.PostService
	CommentService *service.CommentService
	ModuleService  *service.ModuleService
	RolesService   *service.RolesService
}

func NewRouter(
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		validate:     newValidator(),
		Limits:       DefaultRateLimits(),
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}
	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerPosts()
	r.registerRoles()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			modboard API
//	@version		0.1.0
//	@description	Discussion board for university modules. Members post, edit and delete announcements; everyone signed in reads and comments.
//
//	@host						localhost:8080
//	@BasePath					/
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from POST /v1/login. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authed wraps h with bearer authentication and a per-actor rate limit.
func (r *Router) authed(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimit(limit, httpx.ActorOrIP),
	)
}

func (r *Router) registerSession() {
	h := &SessionHandler{AuthService: r.AuthService, validate: r.validate}

	// Sign-in is limited by address to slow down password guessing.
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimit(r.Limits.Strict, httpx.ClientIP),
		),
	)
	r.Mux.Handle("GET /v1/me", r.authed(h.HandleMe, r.Limits.Lenient))
}

func (r *Router) registerPosts() {
	h := &PostsHandler{
		Posts:    r.PostService,
		Comments: r.CommentService,
		Modules:  r.ModuleService,
		Auth:     r.Authorizer,
		validate: r.validate,
	}

	r.Mux.Handle("GET /v1/modules", r.authed(h.HandleModules, r.Limits.Lenient))
	r.Mux.Handle("GET /v1/posts", r.authed(h.HandleList, r.Limits.Lenient))
	r.Mux.Handle("GET /v1/posts/{id}", r.authed(h.HandleDetail, r.Limits.Lenient))
	r.Mux.Handle("GET /v1/posts/{id}/edit", r.authed(h.HandleEditView, r.Limits.Lenient))
	r.Mux.Handle("GET /v1/posts/{id}/delete", r.authed(h.HandleDeleteView, r.Limits.Lenient))

	r.Mux.Handle("POST /v1/posts", r.authed(h.HandleCreate, r.Limits.Moderate))
	r.Mux.Handle("PUT /v1/posts/{id}", r.authed(h.HandleEdit, r.Limits.Moderate))
	r.Mux.Handle("DELETE /v1/posts/{id}", r.authed(h.HandleDelete, r.Limits.Moderate))
	r.Mux.Handle("POST /v1/posts/{id}/comments", r.authed(h.HandleAddComment, r.Limits.Moderate))
}

func (r *Router) registerRoles() {
	h := &RolesHandler{RolesService: r.RolesService, Auth: r.Authorizer, validate: r.validate}

	r.Mux.Handle("GET /v1/roles/users", r.authed(h.HandleList, r.Limits.Moderate))
	r.Mux.Handle("PUT /v1/roles/users", r.authed(h.HandleSetRole, r.Limits.Moderate))
}

func (r *Router) registerSystem() {
	// Probes and scrapes are polled often.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimit(r.Limits.Lenient, httpx.ClientIP),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimit(r.Limits.Lenient, httpx.ClientIP),
		),
	)
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
