package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialLive(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/transcription/live"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestLiveTranscription(t *testing.T) {
	ts, _ := newTestServer(t)
	conn := dialLive(t, ts)

	if err := conn.WriteJSON(liveConfig{Language: "en-US"}); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var started liveFrame
	if err := conn.ReadJSON(&started); err != nil {
		t.Fatalf("read session_started: %v", err)
	}
	if started.Type != "session_started" || started.SessionID == "" || started.Language != "en-US" {
		t.Fatalf("unexpected start frame: %+v", started)
	}

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{0x01, 0x02}); err != nil {
		t.Fatalf("write audio: %v", err)
	}

	var frame liveFrame
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read transcription: %v", err)
	}
	if frame.Type != "transcription" || frame.Text != "chunk text" || !frame.IsFinal {
		t.Fatalf("unexpected frame: %+v", frame)
	}
	if frame.Timestamp == "" {
		t.Fatalf("expected timestamp on transcription frame")
	}
}

func TestLiveDefaultsLanguage(t *testing.T) {
	ts, _ := newTestServer(t)
	conn := dialLive(t, ts)

	if err := conn.WriteJSON(liveConfig{}); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var started liveFrame
	if err := conn.ReadJSON(&started); err != nil {
		t.Fatalf("read session_started: %v", err)
	}
	if started.Language != "vi-VN" {
		t.Fatalf("expected default language, got %s", started.Language)
	}
}

func TestLiveEndsSessionOnDisconnect(t *testing.T) {
	ts, _ := newTestServer(t)
	conn := dialLive(t, ts)

	if err := conn.WriteJSON(liveConfig{}); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var started liveFrame
	if err := conn.ReadJSON(&started); err != nil {
		t.Fatalf("read session_started: %v", err)
	}
	conn.Close()

	// The server ends the session asynchronously after the read loop sees
	// the closed connection.
	deadline := time.Now().Add(2 * time.Second)
	for {
		var errBody map[string]string
		resp := postJSON(t, ts.URL+"/api/transcription/sessions/"+started.SessionID+"/end", nil, &errBody)
		if resp.StatusCode == http.StatusNotFound {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("session %s still active after disconnect", started.SessionID)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
