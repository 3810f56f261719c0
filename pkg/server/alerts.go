package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/earshot/earshot/pkg/alerts"
	"github.com/earshot/earshot/pkg/errorsx"
)

func (s *Server) handleAlertConfigure(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var entries []alerts.Setting
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		writeError(w, errorsx.Wrap(err, errorsx.ReasonInvalidInput))
		return
	}
	count := s.deps.Alerts.Configure(entries)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":           true,
		"message":           "alert configuration updated",
		"configured_alerts": count,
	})
}

func (s *Server) handleAlertSettings(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]any{
		"alert_settings":   s.deps.Alerts.Settings(),
		"available_sounds": alerts.Catalog(),
	})
}

func (s *Server) handleAlertHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		writeError(w, err)
		return
	}
	soundType := r.URL.Query().Get("sound_type")
	history := s.deps.Alerts.History(limit, soundType)
	writeJSON(w, http.StatusOK, map[string]any{
		"total_alerts": len(history),
		"alerts":       history,
		"filter":       soundType,
	})
}

func (s *Server) handleAlertTest(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	components := s.deps.Alerts.SelfTest()
	result := "success"
	for _, c := range components {
		if c.Status != "success" {
			result = "failed"
			break
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"test_result":       result,
		"tested_components": components,
		"timestamp":         time.Now().UTC(),
	})
}

func (s *Server) handleAlertDelete(w http.ResponseWriter, _ *http.Request, p httprouter.Params) {
	if !s.deps.Alerts.Delete(p.ByName("id")) {
		writeError(w, errorsx.New(errorsx.ReasonNotFound, "alert not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "alert deleted"})
}

func (s *Server) handleAlertStatistics(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	stats := s.deps.Alerts.Statistics()
	writeJSON(w, http.StatusOK, map[string]any{
		"daily_stats":        stats.Daily,
		"weekly_stats":       stats.Weekly,
		"monthly_stats":      stats.Monthly,
		"most_common_alerts": stats.CommonTypes,
	})
}
