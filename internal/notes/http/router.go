package http

import (
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/memoa/api/notes" // Swagger docs
	"github.com/aussiebroadwan/memoa/internal/notes/service"
	"github.com/aussiebroadwan/memoa/internal/notes/store"
	"github.com/aussiebroadwan/memoa/pkg/httpx"
	"github.com/aussiebroadwan/memoa/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AccountService *service.AccountService
	NoteService    *service.NoteService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger, cors httpx.CORSConfig) *Router {
	r := &Router{
		Mux:            http.NewServeMux(),
		buildVersion:   buildVersion,
		startTime:      time.Now(),
		logger:         logger,
		store:          st,
		AccountService: &service.AccountService{Store: st},
		NoteService:    &service.NoteService{Store: st},
	}

	// Request logging first so a recovered panic is still logged with its
	// request id and final status.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
		httpx.CORS("/api/", cors),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerAccounts()
	r.registerNotes()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			memoa Notes API
//	@version		0.1.0
//	@description	Personal notes service. Accounts are identified by email and password;
//	@description	there are no tokens, so note operations carry the user id returned at login
//	@description	and deactivation re-sends the password.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/memoa
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /api/health", HealthHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /api/readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}

func (r *Router) registerAccounts() {
	r.Mux.Handle("POST /api/register", &RegisterHandler{AccountService: r.AccountService})
	r.Mux.Handle("POST /api/login", &LoginHandler{AccountService: r.AccountService})
	r.Mux.Handle("POST /api/account/deactivate", &DeactivateHandler{AccountService: r.AccountService})
}

func (r *Router) registerNotes() {
	h := &NotesHandler{NoteService: r.NoteService}

	r.Mux.HandleFunc("GET /api/notes", h.HandleList)
	r.Mux.HandleFunc("POST /api/notes", h.HandleCreate)
	r.Mux.HandleFunc("DELETE /api/notes/{noteId}", h.HandleDelete)
}
