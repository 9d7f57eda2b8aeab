package wsstream

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sensoryink/core/internal/diag"
)

func TestStartBindsToLoopback(t *testing.T) {
	logger := diag.NewLogger(64)
	defer logger.Close()

	s := New(logger)
	addr, err := s.Start("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	if !strings.HasPrefix(addr, "127.0.0.1:") {
		t.Fatalf("expected a loopback address, got %q", addr)
	}
}

func TestClientReceivesBacklogThenLiveEntries(t *testing.T) {
	logger := diag.NewLogger(64)
	defer logger.Close()
	logger.Log(diag.ComponentSystem, diag.LogLevelInfo, "before connect", nil)
	time.Sleep(20 * time.Millisecond)

	s := New(logger)
	addr, err := s.Start("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	u := url.URL{Scheme: "ws", Host: addr, Path: "/diagnostics"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	var backlog struct {
		Message string `json:"message"`
	}
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("expected backlog message, got error: %v", err)
	}
	if err := json.Unmarshal(msg, &backlog); err != nil {
		t.Fatalf("unexpected payload: %v", err)
	}
	if backlog.Message != "before connect" {
		t.Fatalf("expected the pre-connect entry as backlog, got %q", backlog.Message)
	}

	logger.Log(diag.ComponentSystem, diag.LogLevelInfo, "after connect", nil)
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("expected a live message, got error: %v", err)
	}
	var live struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(msg, &live); err != nil {
		t.Fatalf("unexpected payload: %v", err)
	}
	if live.Message != "after connect" {
		t.Fatalf("expected the live entry pushed after connect, got %q", live.Message)
	}
}

func TestStopClosesClientConnections(t *testing.T) {
	logger := diag.NewLogger(64)
	defer logger.Close()

	s := New(logger)
	addr, err := s.Start("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u := url.URL{Scheme: "ws", Host: addr, Path: "/diagnostics"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	if err := s.Stop(); err != nil {
		t.Fatalf("unexpected error stopping: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatalf("expected the connection to be closed after Stop")
	}
}
