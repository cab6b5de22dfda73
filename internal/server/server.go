package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/farmverse/farmverse/internal/farm"
	"github.com/farmverse/farmverse/internal/handler"
	"github.com/farmverse/farmverse/internal/logger"
	"github.com/farmverse/farmverse/internal/market"
	"github.com/farmverse/farmverse/internal/metrics"
	"github.com/farmverse/farmverse/internal/repository"
	"github.com/farmverse/farmverse/internal/reward"
	"github.com/farmverse/farmverse/internal/sse"
)

type Server struct {
	httpServer *http.Server
	store      handler.HealthChecker
	farmSvc    farm.Service
	marketSvc  market.Service
	rewardSvc  reward.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, store handler.HealthChecker, farmSvc farm.Service, marketSvc market.Service, rewardSvc reward.Service, notificationRepo repository.Notification, walletRepo repository.Wallet, txLog repository.TransactionLog, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Crop routes
		cropHandler := handler.NewCropHandler(farmSvc)
		r.Route("/crops", func(r chi.Router) {
			r.Post("/", cropHandler.Plant)
			r.Get("/", cropHandler.List)
			r.Post("/harvest", cropHandler.Harvest)
		})

		// Market routes
		marketHandler := handler.NewMarketHandler(marketSvc)
		r.Route("/market", func(r chi.Router) {
			r.Get("/", marketHandler.Prices)
			r.Get("/trend", marketHandler.Trend)
			r.Get("/history", marketHandler.History)
			r.Post("/sell", marketHandler.Sell)
		})

		// Notification routes
		notificationHandler := handler.NewNotificationHandler(notificationRepo)
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", notificationHandler.List)
			r.Put("/{id}/read", notificationHandler.MarkRead)
		})

		// Live event stream
		r.Get("/events", sse.Handler(hub))

		// User and transaction routes
		userHandler := handler.NewUserHandler(walletRepo, txLog)
		r.Get("/users", userHandler.Get)
		r.Get("/transactions", userHandler.Transactions)

		// Admin routes: manual triggers for the scheduled simulation jobs
		adminHandler := handler.NewAdminHandler(farmSvc, marketSvc, rewardSvc)
		r.Route("/admin", func(r chi.Router) {
			r.Post("/reconcile", adminHandler.Reconcile)
			r.Post("/market/tick", adminHandler.MarketTick)
			r.Post("/rewards/daily", adminHandler.DailyRewards)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		store:     store,
		farmSvc:   farmSvc,
		marketSvc: marketSvc,
		rewardSvc: rewardSvc,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
