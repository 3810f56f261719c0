package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

type liveConfig struct {
	Language string `json:"language"`
}

type liveFrame struct {
	Type       string  `json:"type"`
	SessionID  string  `json:"session_id,omitempty"`
	Language   string  `json:"language,omitempty"`
	Text       string  `json:"text,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	IsFinal    bool    `json:"is_final,omitempty"`
	Timestamp  string  `json:"timestamp,omitempty"`
	Message    string  `json:"message,omitempty"`
}

// handleLive runs one live transcription session over a websocket. The
// client sends a JSON config frame, then binary audio frames; each frame
// yields a transcription frame back. The session is ended server side
// whatever way the connection goes away.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if s.draining.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var cfg liveConfig
	if err := conn.ReadJSON(&cfg); err != nil {
		_ = conn.WriteJSON(liveFrame{Type: "error", Message: "invalid config frame"})
		return
	}
	language := cfg.Language
	if language == "" {
		language = s.deps.DefaultLanguage
	}

	sessionID := s.deps.Sessions.Start(language, nil)
	defer func() {
		if _, err := s.deps.Sessions.End(sessionID); err != nil {
			s.logger.Debug("live_session_end", "session_id", sessionID, "error", err.Error())
		}
	}()

	if err := conn.WriteJSON(liveFrame{
		Type:      "session_started",
		SessionID: sessionID,
		Language:  language,
	}); err != nil {
		return
	}

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			s.logger.Debug("live_disconnected", "session_id", sessionID)
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}

		res, err := s.deps.Sessions.ProcessChunk(r.Context(), sessionID, data)
		if err != nil {
			_ = conn.WriteJSON(liveFrame{Type: "error", Message: err.Error()})
			return
		}
		if res.Text == "" {
			continue
		}
		if err := conn.WriteJSON(liveFrame{
			Type:       "transcription",
			Text:       res.Text,
			Confidence: res.Confidence,
			IsFinal:    res.IsFinal,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		}); err != nil {
			return
		}
	}
}
