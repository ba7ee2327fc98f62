package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-wizard/internal/llm"
	"github.com/jonathan/resume-wizard/internal/server/ratelimit"
	"github.com/jonathan/resume-wizard/internal/store"
)

var validate = validator.New()

// maxRequestBody caps every request body. The largest legitimate payload is
// a full parse request well under this.
const maxRequestBody = 1 << 20 // 1 MB

// DraftStore is the slice of draft persistence the handlers use. Satisfied
// by *store.DraftStore; tests substitute a fake.
type DraftStore interface {
	CreateDraft(ctx context.Context, ps *store.PersistedState) (uuid.UUID, error)
	GetDraft(ctx context.Context, draftID uuid.UUID) (*store.PersistedState, error)
	DeleteDraft(ctx context.Context, draftID uuid.UUID) error
	Close()
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	ai          llm.Client
	drafts      DraftStore
	draftTokens *DraftTokenService

	enhanceLimiter *ratelimit.Limiter
	chatLimiter    *ratelimit.Limiter
	parseLimiter   *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port             int
	DatabaseURL      string
	DraftTokenSecret string
	DraftTokenTTL    time.Duration
}

// New creates a new server instance. The AI client is injected so tests can
// substitute a fake. Draft storage is optional: when DatabaseURL or the
// token secret is absent the draft endpoints report unavailable.
func New(cfg Config, client llm.Client) (*Server, error) {
	s := &Server{
		ai: client,
	}

	if cfg.DatabaseURL != "" && cfg.DraftTokenSecret != "" {
		drafts, err := store.ConnectDrafts(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.drafts = drafts

		ttl := cfg.DraftTokenTTL
		if ttl <= 0 {
			ttl = 72 * time.Hour
		}
		s.draftTokens = NewDraftTokenService(cfg.DraftTokenSecret, ttl)
	}

	limits := ratelimit.LoadLimits()
	s.enhanceLimiter = ratelimit.NewLimiter(limits.Window, limits.EnhanceLimit)
	s.chatLimiter = ratelimit.NewLimiter(limits.Window, limits.ChatLimit)
	s.parseLimiter = ratelimit.NewLimiter(limits.Window, limits.ParseLimit)

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/enhance", s.handleEnhance)
	mux.HandleFunc("POST /api/builder-chat", s.handleBuilderChat)
	mux.HandleFunc("POST /api/parse-resume", s.handleParseResume)
	mux.HandleFunc("POST /api/drafts", s.handleCreateDraft)
	mux.HandleFunc("GET /api/drafts/{id}", s.handleGetDraft)
	mux.HandleFunc("DELETE /api/drafts/{id}", s.handleDeleteDraft)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Non-POST on the API endpoints gets an explicit 405 rather than the
	// mux default 404.
	mux.HandleFunc("/api/enhance", s.handleMethodNotAllowed)
	mux.HandleFunc("/api/builder-chat", s.handleMethodNotAllowed)
	mux.HandleFunc("/api/parse-resume", s.handleMethodNotAllowed)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.withBodyLimit(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for upstream AI calls
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.drafts != nil {
		s.drafts.Close()
	}
	if s.ai != nil {
		if err := s.ai.Close(); err != nil {
			log.Printf("Error closing AI client: %v", err)
		}
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withBodyLimit caps request bodies so no handler reads an unbounded stream
func (s *Server) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// limited checks the endpoint's rate limiter and writes a 429 when the
// client has exceeded its allowance.
func (s *Server) limited(limiter *ratelimit.Limiter, w http.ResponseWriter, r *http.Request) bool {
	if limiter.IsLimited(ratelimit.ClientIP(r)) {
		s.errorResponse(w, http.StatusTooManyRequests, "Too many requests. Please slow down.")
		return true
	}
	return false
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMethodNotAllowed rejects non-POST methods on the API endpoints
func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", "POST")
	s.errorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
