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

	httpapi "github.com/modboard/modboard/internal/board/http"
	"github.com/modboard/modboard/internal/board/perm"
	"github.com/modboard/modboard/internal/board/service"
	"github.com/modboard/modboard/internal/board/store/drivers/sqlite"
	"github.com/modboard/modboard/pkg/cryptox"
	"github.com/modboard/modboard/pkg/jwtx"
	"github.com/modboard/modboard/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the board's store, services and HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     *sqlite.Store
	hasher *cryptox.Hasher
	signer *jwtx.EdDSA
	auth   *service.Authorizer

	authService    *service.AuthService
	postService    *service.PostService
	commentService *service.CommentService
	moduleService  *service.ModuleService
	rolesService   *service.RolesService

	server *http.Server
	router *httpapi.Router
}

// New opens the database, applies migrations, seeds an empty database and
// builds the HTTP server. Nothing is listening until Run.
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "modboard",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initSecrets(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}
	if err := app.initServices(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run serves until SIGINT/SIGTERM or a server error.
func (app *Application) Run() error {
	app.logger.Info("board service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}
	return nil
}

// Shutdown drains in-flight requests within the grace period and closes
// the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down board service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("board service stopped")
	return nil
}

// initSecrets loads the pepper and signing key, creating them on first start.
func (app *Application) initSecrets() error {
	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.Board.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewHasher(pepper)

	pemKey, err := cryptox.LoadOrCreateEd25519Key(app.cfg.Board.SigningKeyFile)
	if err != nil {
		return fmt.Errorf("failed to load signing key: %w", err)
	}
	app.signer, err = jwtx.NewEdDSA("", app.cfg.Board.Issuer, pemKey)
	if err != nil {
		return fmt.Errorf("failed to initialize signer: %w", err)
	}
	return nil
}

func (app *Application) initDatabase(ctx context.Context) error {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.Board.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}
	app.logger.Info("database migrations applied successfully")

	data := RolesOnly()
	if app.cfg.Board.Seed {
		if data, err = SampleData(app.cfg.Board.SeedPassword); err != nil {
			_ = db.Close()
			return err
		}
	}
	seeder := &service.SeedService{Store: db, Hasher: app.hasher}
	if err := seeder.Seed(slogx.WithContext(ctx, app.logger), data); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to seed database: %w", err)
	}
	return nil
}

// initServices builds the capability table from the seeded roles and the
// services on top of it.
func (app *Application) initServices(ctx context.Context) error {
	roles, err := app.db.Roles().ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}
	app.auth = &service.Authorizer{Store: app.db, Table: perm.New(roles)}

	app.authService = &service.AuthService{
		Store:  app.db,
		Auth:   app.auth,
		Hasher: app.hasher,
		Signer: app.signer,
		Issuer: app.cfg.Board.Issuer,
		TTL:    app.cfg.Board.SessionTTL,
	}
	app.postService = &service.PostService{Store: app.db, Auth: app.auth}
	app.commentService = &service.CommentService{Store: app.db, Auth: app.auth}
	app.moduleService = &service.ModuleService{Store: app.db}
	app.rolesService = &service.RolesService{
		Store:           app.db,
		Auth:            app.auth,
		ReservedAccount: app.cfg.Board.ReservedAccount,
	}
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.signer, app.signer, BuildVersion, app.db, app.logger)
	router.Limits = httpapi.RateLimits{
		Strict:   app.cfg.RateLimits.Strict,
		Moderate: app.cfg.RateLimits.Moderate,
		Lenient:  app.cfg.RateLimits.Lenient,
	}

	router.Authorizer = app.auth
	router.AuthService = app.authService
	router.PostService = app.postService
	router.CommentService = app.commentService
	router.ModuleService = app.moduleService
	router.RolesService = app.rolesService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
