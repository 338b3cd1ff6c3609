package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// The upgrade runs through the full middleware chain, so this also covers
// the hijack passthrough on the logging writer.
func TestWebsocket_PushesRenderAfterMutation(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	defer conn.Close()
	resp.Body.Close()
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}

	// Registration happens just after the handshake on the handler
	// goroutine; wait for it so the broadcast has a subscriber.
	time.Sleep(100 * time.Millisecond)

	body := `{"title":"Awards","item":{"kind":"paragraph","content":"Hackathon winner"}}`
	res, err := http.Post(srv.URL+"/api/sections", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post section: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read pushed fragment: %v", err)
	}
	if !strings.Contains(string(frame), "resume-paper") {
		t.Error("pushed frame is not a rendered paper fragment")
	}
	if !strings.Contains(string(frame), "AWARDS") {
		t.Errorf("pushed fragment missing new section: %.200s", frame)
	}
}

func TestWebsocket_SlowClientDoesNotBlockMutations(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	resp.Body.Close()
	time.Sleep(100 * time.Millisecond)

	// Never read from the connection; the per-client buffer fills and the
	// hub drops frames instead of stalling the mutation path.
	for i := 0; i < 20; i++ {
		done := make(chan struct{})
		go func() {
			defer close(done)
			rec := doJSON(t, s, http.MethodPost, "/api/sections/summary/items",
				`{"item":{"kind":"paragraph","content":"still responsive"}}`)
			if rec.Code != http.StatusCreated {
				t.Errorf("expected 201, got %d", rec.Code)
			}
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("mutation blocked behind a slow websocket client")
		}
	}
}
