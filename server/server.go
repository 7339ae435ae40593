package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/HiroYokoyama/genai-ui-web/generator"
	"github.com/HiroYokoyama/genai-ui-web/history"
)

//go:embed web/index.html
var indexHTML []byte

// upstreamTimeout bounds one remote LLM call. Expiry surfaces as an upstream
// error like any other remote failure.
const upstreamTimeout = 60 * time.Second

type Server struct {
	agent  *generator.Agent
	store  *history.Store
	logDir string
}

func New(agent *generator.Agent, store *history.Store, logDir string) (*Server, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	if store == nil {
		return nil, errors.New("history store required")
	}
	return &Server{agent: agent, store: store, logDir: logDir}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", s.handlePing)
	mux.HandleFunc("/history", s.handleHistory)
	mux.HandleFunc("/models", s.handleModels)
	mux.HandleFunc("/generate", s.handleGenerate)
	mux.Handle("/logs/", http.StripPrefix("/logs/", http.FileServer(http.Dir(s.logDir))))
	mux.HandleFunc("/", s.handleIndex)
	return logMiddleware(corsMiddleware(mux))
}

// --- Handlers ---

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok", "message": "GenUI Server is running"})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, s.store.Load())
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	q := r.URL.Query()

	ctx, cancel := context.WithTimeout(r.Context(), upstreamTimeout)
	defer cancel()

	models, err := s.agent.ListModels(ctx, q.Get("llm_url"), q.Get("api_key"))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, map[string][]string{"models": models})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req generator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), upstreamTimeout)
	defer cancel()

	res, err := s.agent.Generate(ctx, req)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, map[string]string{"html": res.HTML})
}

// statusFor maps the generator error taxonomy onto HTTP statuses:
// configuration problems and correctable endpoint mistakes are the caller's
// to fix, everything else from upstream is a 500.
func statusFor(err error) int {
	if errors.Is(err, generator.ErrInvalidConfig) {
		return http.StatusBadRequest
	}
	var ue *generator.UpstreamError
	if errors.As(err, &ue) && ue.Unreachable {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

// --- Middleware ---

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()[:8]
		w.Header().Set("X-Request-ID", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("[server] %s %s %s %d %s",
			id, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
