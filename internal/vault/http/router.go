package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/internal/vault/store"
	"github.com/aussiebroadwan/passvault/pkg/httpx"
	"github.com/aussiebroadwan/passvault/pkg/jwtx"
	"github.com/aussiebroadwan/passvault/pkg/slogx"

	_ "github.com/aussiebroadwan/passvault/api/vault" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AccountService    *service.AccountService
	VaultService      *service.VaultService
	CredentialService *service.CredentialService
}

func NewRouter(verifier jwtx.Verifier, buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerVaults()
	r.registerCredentials()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
//
//	@title			Passvault API
//	@version		0.1.0
//	@description	Multi-user credential vault. Secrets are encrypted at rest with AES-256-CBC
//	@description	and only ever returned to the account that owns them.
//	@description
//	@description	Session tokens are HS256 JWTs valid for ten minutes and cannot be refreshed.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) secured(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, httpx.AuthnMiddleware(r.verifier))
}

func (r *Router) registerAccounts() {
	h := &AccountHandler{AccountService: r.AccountService}

	r.Mux.HandleFunc("POST /v1/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /v1/login", h.HandleLogin)

	r.Mux.Handle("GET /v1/me", r.secured(h.HandleMe))
	r.Mux.Handle("POST /v1/verify-password", r.secured(h.HandleVerifyPassword))
	r.Mux.Handle("PUT /v1/me/password", r.secured(h.HandleChangePassword))
}

func (r *Router) registerVaults() {
	h := &VaultHandler{VaultService: r.VaultService}

	r.Mux.Handle("GET /v1/vaults", r.secured(h.HandleList))
	r.Mux.Handle("GET /v1/vaults/{vault_id}", r.secured(h.HandleGet))
}

func (r *Router) registerCredentials() {
	h := &CredentialHandler{CredentialService: r.CredentialService}

	r.Mux.Handle("GET /v1/vaults/{vault_id}/credentials", r.secured(h.HandleList))
	r.Mux.Handle("POST /v1/vaults/{vault_id}/credentials", r.secured(h.HandleCreate))
	r.Mux.Handle("GET /v1/credentials/{credential_id}", r.secured(h.HandleGet))
	r.Mux.Handle("PUT /v1/credentials/{credential_id}", r.secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/credentials/{credential_id}", r.secured(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
