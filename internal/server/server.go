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

	"github.com/mvirden/Confidant_Go/internal/auth"
	"github.com/mvirden/Confidant_Go/internal/database"
	"github.com/mvirden/Confidant_Go/internal/friends"
	"github.com/mvirden/Confidant_Go/internal/handler"
	"github.com/mvirden/Confidant_Go/internal/logger"
	"github.com/mvirden/Confidant_Go/internal/metrics"
	"github.com/mvirden/Confidant_Go/internal/middleware"
	"github.com/mvirden/Confidant_Go/internal/relay"
	"github.com/mvirden/Confidant_Go/internal/user"
)

type Server struct {
	httpServer     *http.Server
	dbPool         database.Pool
	authService    auth.Service
	userService    user.Service
	friendsService friends.Service
	hub            *relay.Hub
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, dbPool database.Pool, authService auth.Service, userService user.Service, friendsService friends.Service, hub *relay.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewRateDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	requireAuth := middleware.RequireAuth(authService)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", handler.HandleListUsers(userService))
			r.Post("/register", handler.HandleRegister(authService))
			r.Post("/login", handler.HandleLogin(authService))
			r.With(requireAuth).Post("/changePassword", handler.HandleChangePassword(authService))

			// Friend routes. Reads are public, writes require a token.
			r.Get("/friends/{id}", handler.HandleListFriends(friendsService))
			r.With(requireAuth).Post("/friends", handler.HandleAddFriend(friendsService))
			r.With(requireAuth).Delete("/friends/{id}", handler.HandleRemoveFriend(friendsService))
			r.With(requireAuth).Delete("/removeFriends", handler.HandleRemoveAllFriends(friendsService))

			r.Get("/{id}", handler.HandleGetUser(userService))
			r.With(requireAuth).Delete("/{id}", handler.HandleDeleteUser(userService))
		})

		r.With(requireAuth).Post("/relay/send", handler.HandleSendMessage(hub))
	})

	// Relay stream endpoint. The handler authenticates itself because
	// EventSource clients can only pass the token as a query parameter.
	r.Get("/relay/connect", relay.Handler(hub, authService))

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:         dbPool,
		authService:    authService,
		userService:    userService,
		friendsService: friendsService,
		hub:            hub,
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

// Flush lets streaming handlers behind this wrapper push events as they happen
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

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
