// Package web hosts the built site: static files, a small JSON API over
// the latest build result, and a websocket that tells open pages when a
// rebuild landed.
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"

	"github.com/mosheDeveloper/league-standings/internal/logger"
	"github.com/mosheDeveloper/league-standings/internal/site"
)

type Server struct {
	addr      string
	staticDir string

	hub        *Hub
	httpServer *http.Server
	upgrader   websocket.Upgrader

	mu     sync.RWMutex
	latest *site.Result
}

func NewServer(addr, staticDir string, hub *Hub) *Server {
	return &Server{
		addr:      addr,
		staticDir: staticDir,
		hub:       hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// SetResult publishes a finished build to the API and notifies clients.
func (s *Server) SetResult(res *site.Result) {
	s.mu.Lock()
	s.latest = res
	s.mu.Unlock()

	s.hub.Broadcast(&Notice{
		Type:        "rebuilt",
		BuildID:     res.BuildID,
		GeneratedAt: res.GeneratedAt,
	})
}

func (s *Server) Router() http.Handler {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/standings", s.handleStandings).Methods("GET")
	api.HandleFunc("/matches", s.handleMatches).Methods("GET")

	router.HandleFunc("/ws", s.handleWebSocket)
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.staticDir)))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(router)
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop() {
	if s.httpServer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		logger.L().Error("server shutdown", "err", err)
	}
}

func (s *Server) result() *site.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	res := s.result()
	if res == nil {
		http.Error(w, "no build available yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, map[string]any{
		"build_id":         res.BuildID,
		"generated_at_utc": res.GeneratedAt,
		"standings":        res.Standings,
	})
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	res := s.result()
	if res == nil {
		http.Error(w, "no build available yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, map[string]any{
		"build_id":         res.BuildID,
		"generated_at_utc": res.GeneratedAt,
		"matches":          res.Matches,
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.L().Error("websocket upgrade", "err", err)
		return
	}

	c := &client{hub: s.hub, conn: conn, send: make(chan []byte, 16)}
	s.hub.register <- c

	welcome, _ := json.Marshal(&Notice{Type: "connected"})
	c.send <- welcome

	go c.writePump()
	go c.readPump()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
