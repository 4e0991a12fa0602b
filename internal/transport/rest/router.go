package rest

import (
	"fmt"
	"net/http"

	"github.com/heartmarshall/lawdesk-backend/internal/transport/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Categories *CategoryHandler
	Lawsuits   *LawsuitHandler
	Users      *UserHandler
}

// RouterOptions configures the cross-cutting parts of the router.
type RouterOptions struct {
	// Metrics instruments every route and serves MetricsPath. nil disables both.
	Metrics     *middleware.Metrics
	MetricsPath string
	// AuthLimit wraps the credential endpoints. nil disables it.
	AuthLimit middleware.Middleware
}

type router struct {
	mux     *http.ServeMux
	metrics *middleware.Metrics
}

func (rt *router) handle(pattern string, h http.Handler) {
	if rt.metrics != nil {
		h = rt.metrics.Instrument(pattern, h)
	}
	rt.mux.Handle(pattern, h)
}

func (rt *router) route(method, path string, gf guardFor, h http.HandlerFunc) {
	rt.handle(method+" "+path, guarded(gf, h))
}

// NewRouter registers every route. /departments mirrors /categories and
// /employees mirrors /users. Unmatched paths get a JSON 404.
func NewRouter(h Handlers, opts RouterOptions) *http.ServeMux {
	rt := &router{mux: http.NewServeMux(), metrics: opts.Metrics}

	rt.route(http.MethodGet, "/live", public, h.Health.Live)
	rt.route(http.MethodGet, "/ready", public, h.Health.Ready)
	rt.route(http.MethodGet, "/health", public, h.Health.Health)
	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		rt.mux.Handle("GET "+path, opts.Metrics.Handler())
	}

	limit := opts.AuthLimit
	if limit == nil {
		limit = middleware.Chain()
	}
	rt.handle("POST /auth/token", limit(http.HandlerFunc(h.Auth.Token)))
	rt.handle("POST /auth/register", limit(http.HandlerFunc(h.Auth.Register)))

	for _, base := range []string{"/categories", "/departments"} {
		item := fmt.Sprintf("%s/{handle}", base)
		rt.route(http.MethodPost, base, admin, h.Categories.Create)
		rt.route(http.MethodGet, base, identified, h.Categories.List)
		rt.route(http.MethodGet, item, identified, h.Categories.Get)
		rt.route(http.MethodPatch, item, admin, h.Categories.Update)
		rt.route(http.MethodDelete, item, admin, h.Categories.Delete)
	}

	rt.route(http.MethodPost, "/lawsuits", admin, h.Lawsuits.Create)
	rt.route(http.MethodGet, "/lawsuits", identified, h.Lawsuits.List)
	rt.route(http.MethodGet, "/lawsuits/{id}", identified, h.Lawsuits.Get)
	rt.route(http.MethodPatch, "/lawsuits/{id}", admin, h.Lawsuits.Update)
	rt.route(http.MethodDelete, "/lawsuits/{id}", admin, h.Lawsuits.Delete)

	for _, base := range []string{"/users", "/employees"} {
		item := fmt.Sprintf("%s/{username}", base)
		assignment := fmt.Sprintf("%s/{username}/lawsuits/{id}", base)
		rt.route(http.MethodPost, base, admin, h.Users.Create)
		rt.route(http.MethodGet, base, admin, h.Users.List)
		rt.route(http.MethodGet, item, selfOrAdmin, h.Users.Get)
		rt.route(http.MethodPatch, item, selfOrAdmin, h.Users.Update)
		rt.route(http.MethodDelete, item, selfOrAdmin, h.Users.Delete)
		rt.route(http.MethodPost, assignment, selfOrAdmin, h.Users.Assign)
		rt.route(http.MethodDelete, assignment, admin, h.Users.Unassign)
	}

	rt.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	return rt.mux
}
