package server

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/earshot/earshot/pkg/classify"
)

// soundClassPageSize caps the class listing; the catalog behind it can be
// far larger than anyone wants in one response.
const soundClassPageSize = 50

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	data, filename, err := readAudioUpload(r)
	if err != nil {
		writeError(w, err)
		return
	}
	topK, err := queryInt(r, "top_k", 5)
	if err != nil {
		writeError(w, err)
		return
	}

	res := s.deps.Classifier.ClassifyAudio(data, topK)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"classifications": res.Classifications,
		"top_prediction":  res.TopPrediction,
		"processing_time": res.ProcessingTime,
		"filename":        filename,
		"model":           "YAMNet",
	})
}

func (s *Server) handleSoundClasses(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	classes := s.deps.Classifier.Classes()
	page := classes
	if len(page) > soundClassPageSize {
		page = page[:soundClassPageSize]
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_classes": len(classes),
		"classes":       page,
		"model":         "YAMNet",
	})
}

func (s *Server) handleCriticalSounds(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]any{
		"critical_sounds": classify.CriticalSounds(),
	})
}

func (s *Server) handleClassifierStatus(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	status := "inactive"
	if s.deps.Classifier.Ready() {
		status = "active"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"service":       "YAMNet Audio Classifier",
		"status":        status,
		"model_loaded":  s.deps.Classifier.Ready(),
		"total_classes": len(s.deps.Classifier.Classes()),
	})
}
