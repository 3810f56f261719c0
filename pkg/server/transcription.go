package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/earshot/earshot/pkg/errorsx"
)

type startSessionRequest struct {
	Language     string   `json:"language"`
	Participants []string `json:"participants"`
}

func (s *Server) handleSessionStart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, errorsx.Wrap(err, errorsx.ReasonInvalidInput))
		return
	}

	id := s.deps.Sessions.Start(req.Language, req.Participants)
	tr, err := s.deps.Sessions.Transcript(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"session_id":   id,
		"language":     tr.Language,
		"participants": tr.Participants,
		"start_time":   time.Now().UTC(),
	})
}

func (s *Server) handleSessionEnd(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	id := p.ByName("id")
	res, err := s.deps.Sessions.End(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"session_id":     id,
		"end_time":       time.Now().UTC(),
		"total_segments": res.TotalSegments,
		"duration":       res.Duration,
	})
}

func (s *Server) handleSessionTranscript(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	id := p.ByName("id")
	tr, err := s.deps.Sessions.Transcript(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id":   id,
		"transcript":   tr.Segments,
		"summary":      tr.Summary,
		"participants": tr.Participants,
		"duration":     tr.Duration,
	})
}

func (s *Server) handleSessionList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		writeError(w, err)
		return
	}
	list := s.deps.Sessions.Recent(limit)
	writeJSON(w, http.StatusOK, map[string]any{
		"total_sessions": len(list),
		"sessions":       list,
	})
}

func (s *Server) handleSessionDelete(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	if !s.deps.Sessions.Delete(p.ByName("id")) {
		writeError(w, errorsx.New(errorsx.ReasonNotFound, "session not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "session deleted"})
}

func (s *Server) handleSessionExport(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "txt"
	}
	res, err := s.deps.Sessions.Export(p.ByName("id"), format)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"file_path": res.Path,
		"format":    res.Format,
	})
}
