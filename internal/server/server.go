package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/technaptix/site-api/internal/api/handlers"
	"github.com/technaptix/site-api/internal/api/middleware"
	"github.com/technaptix/site-api/internal/config"
	"github.com/technaptix/site-api/internal/logging"
	"github.com/technaptix/site-api/internal/mailer"
	"github.com/technaptix/site-api/internal/server/routes"
	"github.com/technaptix/site-api/internal/service"
	"github.com/technaptix/site-api/internal/storage"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// Dependencies lets callers replace the collaborators built from config
type Dependencies struct {
	Sender mailer.Sender
	Store  *storage.DiskStore
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, deps Dependencies) (*Server, error) {
	// Set release mode for production
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	if deps.Sender == nil {
		deps.Sender = mailer.NewSMTPSender(cfg.Mail.SMTP)
	}
	if deps.Store == nil {
		store, err := storage.NewDiskStore(cfg.ScratchDir)
		if err != nil {
			return nil, err
		}
		deps.Store = store
	}

	router := gin.New()
	router.MaxMultipartMemory = 8 << 20 // 8 MiB, larger parts spill to temp files
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	h := &routes.Handlers{
		Health:  handlers.NewHealthHandler(cfg.Delivery),
		Apply:   handlers.NewApplyHandler(service.NewApplicationService(cfg.Delivery, cfg.Mail, deps.Sender, deps.Store)),
		Contact: handlers.NewContactHandler(service.NewContactService(cfg.Mail, deps.Sender)),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
	}

	routes.SetupGlobalMiddleware(router, cfg)
	routes.Setup(router, cfg, h, m)

	logDeliveryMode(cfg, deps.Store)

	return &Server{
		router: router,
		cfg:    cfg,
	}, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Start(ctx context.Context) error {
	logger := logging.GetGlobalLogger()

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Careers server running on port %s", s.cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func logDeliveryMode(cfg *config.Config, store *storage.DiskStore) {
	logger := logging.GetGlobalLogger()

	if cfg.Delivery == config.DeliverySMTP {
		logger.Info("Delivery mode smtp: applications are emailed to %s via %s:%d", cfg.Mail.CareersTo, cfg.Mail.SMTP.Host, cfg.Mail.SMTP.Port)
		return
	}

	logger.Warn("Delivery mode disk: applications are saved to %s instead of being emailed", store.Dir())
	if missing := cfg.Mail.MissingForCareers(); len(missing) > 0 {
		logger.Warn("Mail settings missing: %s", strings.Join(missing, ", "))
	}
}
