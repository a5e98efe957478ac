package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playhead/internal/auth"
	"github.com/desertthunder/playhead/internal/cache"
	"github.com/desertthunder/playhead/internal/playlists"
	"github.com/desertthunder/playhead/internal/repositories"
	"github.com/desertthunder/playhead/internal/services"
	"github.com/desertthunder/playhead/internal/shared"
)

// Server wires the application services behind an HTTP listener.
type Server struct {
	config *shared.Config
	logger *log.Logger
	db     *sql.DB
	store  cache.Store
	router *BasicRouter
}

// New assembles the full application: database, cache store, catalog client,
// services, routes, and middleware.
func New(config *shared.Config, logger *log.Logger) (*Server, error) {
	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	store := cache.Open(config.Cache.Path, logger)

	var catalog services.Catalog
	if config.Catalog.ProxyURL != "" {
		catalog = services.NewYTMusicCatalog(config.Catalog.ProxyURL, config.Catalog.Region, nil)
	} else {
		logger.Warn("no catalog proxy configured, search and track routes disabled")
	}

	users := repositories.NewUserRepository(db)
	lists := repositories.NewPlaylistRepository(db)

	tokens := auth.NewTokenIssuer(config.Auth.TokenSecret, time.Duration(config.Auth.TokenTTLHours)*time.Hour)
	authSvc := auth.NewService(users, auth.NewBcryptHasher(0), tokens, logger)
	playlistSvc := playlists.NewService(lists)
	lookup := services.NewLookup(catalog, store, logger)

	handlers := NewHandlers(authSvc, playlistSvc, lookup, logger, config.Server.StaticDir, config.Catalog.PlayerMode)

	router, err := buildRouter(config, logger, authSvc, handlers)
	if err != nil {
		db.Close()
		store.Close()
		return nil, err
	}

	return &Server{
		config: config,
		logger: logger,
		db:     db,
		store:  store,
		router: router,
	}, nil
}

// buildRouter registers middleware and routes.
//
// Global middleware order is recovery, logging, CORS, then the request quota,
// so panics in any later layer still surface as 500s and every response is
// logged. The auth routes carry a second, stricter quota on top.
func buildRouter(config *shared.Config, logger *log.Logger, authSvc *auth.Service, handlers *Handlers) (*BasicRouter, error) {
	limiter, err := NewRateLimiter(config.Limits.Quota)
	if err != nil {
		return nil, err
	}
	authLimiter, err := NewRateLimiter(config.Limits.AuthQuota)
	if err != nil {
		return nil, err
	}

	router := NewBasicRouter()
	router.Use(
		NewRecoveryMiddleware(logger),
		NewLoggingMiddleware(logger),
		NewCORSMiddleware(),
		limiter.Middleware(),
	)

	required := NewAuthMiddleware(authSvc, true)
	optional := NewAuthMiddleware(authSvc, false)

	router.Handle(http.MethodGet, "/api/health", http.HandlerFunc(handlers.Health))

	router.Handle(http.MethodPost, "/api/auth/register", authLimiter.Wrap(http.HandlerFunc(handlers.Register)))
	router.Handle(http.MethodPost, "/api/auth/login", authLimiter.Wrap(http.HandlerFunc(handlers.Login)))

	router.Handle(http.MethodGet, "/api/search", http.HandlerFunc(handlers.Search))
	router.Handle(http.MethodGet, "/api/track/{videoId}", http.HandlerFunc(handlers.Track))

	router.Handle(http.MethodGet, "/api/playlists", optional(http.HandlerFunc(handlers.ListPlaylists)))
	router.Handle(http.MethodPost, "/api/playlists", required(http.HandlerFunc(handlers.CreatePlaylist)))
	router.Handle(http.MethodPut, "/api/playlists/{id}", required(http.HandlerFunc(handlers.UpdatePlaylist)))
	router.Handle(http.MethodDelete, "/api/playlists/{id}", required(http.HandlerFunc(handlers.DeletePlaylist)))

	router.Handle("", "/", http.HandlerFunc(handlers.Static))

	return router, nil
}

// Handler exposes the assembled router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP until the context is cancelled or an interrupt arrives,
// then drains in-flight requests before closing the database and cache.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "env", s.config.Server.Environment)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		s.close()
		return err
	case <-ctx.Done():
	case sig := <-stop:
		s.logger.Info("shutting down", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	s.close()
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) close() {
	if err := s.store.Close(); err != nil {
		s.logger.Error("closing cache store", "error", err)
	}
	if err := s.db.Close(); err != nil {
		s.logger.Error("closing database", "error", err)
	}
}
