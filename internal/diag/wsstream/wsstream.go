// Package wsstream mirrors a diag.Logger's entries to a local dev console
// over a loopback websocket. It is an opt-in debugging convenience, not a
// persistence or sharing mechanism: it binds to 127.0.0.1, carries no
// document content, and serves diagnostics only.
package wsstream

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sensoryink/core/internal/diag"
)

// Server pushes logger entries to any connected websocket client.
type Server struct {
	logger   *diag.Logger
	upgrader websocket.Upgrader

	httpSrv *http.Server
	ln      net.Listener

	mu      sync.Mutex
	clients map[*websocket.Conn]chan diag.Entry
}

// New creates a loopback-only debug stream server for logger.
func New(logger *diag.Logger) *Server {
	return &Server{
		logger:  logger,
		clients: make(map[*websocket.Conn]chan diag.Entry),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Start binds to a loopback address ("" picks an ephemeral port) and begins
// serving. Returns the address actually bound, e.g. "127.0.0.1:54321".
func (s *Server) Start(addr string) (string, error) {
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", err
	}
	s.ln = ln

	mux := http.NewServeMux()
	mux.HandleFunc("/diagnostics", s.handle)
	s.httpSrv = &http.Server{Handler: mux}

	go s.httpSrv.Serve(ln)
	return ln.Addr().String(), nil
}

// Stop closes all client connections and the listener.
func (s *Server) Stop() error {
	s.mu.Lock()
	for c, ch := range s.clients {
		s.logger.Unsubscribe(ch)
		c.Close()
	}
	s.clients = make(map[*websocket.Conn]chan diag.Entry)
	s.mu.Unlock()

	if s.httpSrv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	feed := s.logger.Subscribe(256)
	s.mu.Lock()
	s.clients[conn] = feed
	s.mu.Unlock()

	for _, e := range s.logger.GetRecentEntries(50) {
		if writeEntry(conn, e) != nil {
			break
		}
	}

	for e := range feed {
		if writeEntry(conn, e) != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

func writeEntry(conn *websocket.Conn, e diag.Entry) error {
	payload := struct {
		Time      time.Time      `json:"time"`
		Component string         `json:"component"`
		Level     string         `json:"level"`
		Message   string         `json:"message"`
		Data      map[string]any `json:"data,omitempty"`
	}{e.Timestamp, string(e.Component), e.Level.String(), e.Message, e.Data}

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, b)
}
