package agent

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"connect4/game"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type moveResponse struct {
	Column int    `json:"column"`
	Agent  string `json:"agent"`
}

// Server exposes one agent over HTTP. Agents keep mutable per-call state,
// so requests are served one at a time.
type Server struct {
	agent Agent
	mu    sync.Mutex
}

func NewServer(a Agent) *Server {
	return &Server{agent: a}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post("/findmove", s.handleFindMove)
	return r
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	var obs game.Observation
	if err := json.NewDecoder(r.Body).Decode(&obs); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request: " + err.Error()})
		return
	}

	s.mu.Lock()
	col, metric := s.agent.FindMove(obs)
	s.mu.Unlock()

	log.Debug().
		Str("agent", s.agent.Name()).
		Int("column", col).
		Dur("duration", metric.Duration).
		Msg("served move")
	writeJSON(w, http.StatusOK, moveResponse{Column: col, Agent: s.agent.Name()})
}

// StartAgentServer serves a on addr until the listener fails
func StartAgentServer(addr string, a Agent) error {
	log.Info().Msgf("starting agent server for %s on %s ...", a.Name(), addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewServer(a).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
