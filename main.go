package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/blogem/signin-with-google/authenticator"
	"github.com/blogem/signin-with-google/config"
	"github.com/blogem/signin-with-google/controllers"
	"github.com/blogem/signin-with-google/database"
	"github.com/blogem/signin-with-google/logger"
	"github.com/blogem/signin-with-google/metrics"
	appmiddleware "github.com/blogem/signin-with-google/middleware"
	"github.com/blogem/signin-with-google/repositories"
	"github.com/blogem/signin-with-google/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		zlog.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	repos := repositories.NewRepositories(db)

	// Provider discovery and ID-token verification both need the issuer
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	provider, err := authenticator.NewGoogleProvider(ctx, authenticator.GoogleConfig{
		Issuer:       cfg.GoogleIssuer,
		ClientID:     cfg.ServerClientID,
		ClientSecret: cfg.ClientSecret,
		CallbackURL:  cfg.CallbackURL,
	})
	if err != nil {
		cancel()
		zlog.Fatal("Failed to initialize Google provider", zap.Error(err))
	}
	verifier, err := authenticator.NewOIDCVerifier(ctx, cfg.GoogleIssuer, cfg.ServerClientID)
	cancel()
	if err != nil {
		zlog.Fatal("Failed to initialize token verifier", zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	clientConfig := services.DefaultClientConfig(cfg.ServerClientID)
	clientConfig.AutoSelectEnabled = cfg.AutoSelect
	clientConfig.FilterByAuthorizedAccounts = cfg.FilterAuthorized

	srvs := services.NewServices(repos, provider, verifier, clientConfig, zlog, m)
	ctrl := controllers.NewControllers(srvs, zlog.Named("controllers"))

	r, err := setupRouter(cfg, ctrl, srvs, repos, m, zlog)
	if err != nil {
		zlog.Fatal("Failed to setup router", zap.Error(err))
	}

	zlog.Info("Sign-in shell starting",
		zap.String("port", cfg.Port),
		zap.String("database", cfg.DatabasePath),
		zap.String("issuer", cfg.GoogleIssuer),
	)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		zlog.Fatal("Server stopped", zap.Error(err))
	}
}

// setupRouter configures all routes
func setupRouter(cfg config.Config, ctrl *controllers.Controllers, srvs *services.Services, repos *repositories.Repositories, m *metrics.Metrics, zlog *zap.Logger) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(appmiddleware.RequestLogger(zlog.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(appmiddleware.Metrics(m))

	// Session middleware; holds only the pending sign-in handle id
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "signin_session",
		Secure:         cfg.UseHTTPS, // Set to true when USE_HTTPS=true (production)
		Gclifetime:     3600,
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)
	r.Use(appmiddleware.AuditLogger(repos.Audit, srvs.Session, zlog.Named("audit")))

	loginLimiter := appmiddleware.NewIPRateLimiter(rate.Limit(cfg.LoginRateLimit), cfg.LoginRateBurst)

	// PUBLIC ROUTES
	r.Get("/", ctrl.Auth.Index)
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RateLimit(loginLimiter))
		r.Get("/login", ctrl.Auth.Login)
		r.Get("/callback", ctrl.Auth.Callback)
	})
	r.Post("/logout", ctrl.Auth.Logout)
	r.Get("/api/me", ctrl.Auth.Me)
	r.Get("/api/state", ctrl.Auth.State)
	r.Get("/api/state/stream", ctrl.Auth.StateStream)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "signin-with-google"}`)
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	// PROTECTED ROUTES (a signed-in user is required)
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireAuth(srvs.Session, zlog.Named("auth")))
		r.Get("/profile", ctrl.Auth.Profile)
	})

	return r, nil
}
