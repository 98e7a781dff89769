package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/passvault/internal/vault/http"
	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/internal/vault/store/sqlstore"
	"github.com/aussiebroadwan/passvault/pkg/cryptox"
	"github.com/aussiebroadwan/passvault/pkg/jwtx"
	"github.com/aussiebroadwan/passvault/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application holds the vault server and everything it depends on.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       *sqlstore.Store
	cipher   *cryptox.Cipher
	hasher   *cryptox.Hasher
	signer   jwtx.Signer
	verifier jwtx.Verifier

	sessionService      *service.SessionService
	accountService      *service.AccountService
	vaultService        *service.VaultService
	credentialService   *service.CredentialService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New validates key material, opens the database and wires all services.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "passvault",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initKeys(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run serves until ctx is cancelled, SIGINT/SIGTERM arrives or the server
// fails, then shuts down.
func (app *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.housekeepingService.Start(ctx)

	app.logger.Info("passvault starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"database", app.cfg.DatabaseDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.Shutdown()
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		app.logger.Info("shutdown signal received")
	}

	if err := app.Shutdown(); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Shutdown drains the HTTP server, stops housekeeping and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down passvault...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("passvault stopped")
	return nil
}

// initKeys loads the cipher key, pepper and JWT secret. Any failure is a
// configuration error and the process must not start.
func (app *Application) initKeys() error {
	key, err := cryptox.LoadCipherKey(app.cfg.EncryptionSecret, app.cfg.EncryptionSecretFile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	app.cipher, err = cryptox.NewCipher(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	pepper, err := cryptox.LoadPepperFile(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	app.hasher = cryptox.NewHasher(app.cfg.HashParams(), pepper)

	signer, err := jwtx.NewSignerHS256([]byte(app.cfg.JWTSecret))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	verifier, err := jwtx.NewVerifierHS256([]byte(app.cfg.JWTSecret), jwtx.VerifyOptions{Issuer: app.cfg.TokenIssuer})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	app.signer, app.verifier = signer, verifier
	return nil
}

// initDatabase opens the configured store and applies migrations.
func (app *Application) initDatabase() error {
	db, err := sqlstore.Open(app.cfg.DatabaseDriver, app.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", db.Dialect())
	return nil
}

func (app *Application) initServices() {
	app.sessionService = &service.SessionService{
		Signer:   app.signer,
		Verifier: app.verifier,
		Issuer:   app.cfg.TokenIssuer,
		TTL:      app.cfg.TokenTTL,
	}

	app.accountService = &service.AccountService{
		Store:    app.db,
		Hasher:   app.hasher,
		Cipher:   app.cipher,
		Sessions: app.sessionService,
	}
	app.vaultService = &service.VaultService{Store: app.db}
	app.credentialService = &service.CredentialService{Store: app.db, Cipher: app.cipher}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.AuditRetention,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.verifier, BuildVersion, app.db, app.logger)

	router.AccountService = app.accountService
	router.VaultService = app.vaultService
	router.CredentialService = app.credentialService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
