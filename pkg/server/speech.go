package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/earshot/earshot/pkg/audio"
	"github.com/earshot/earshot/pkg/errorsx"
)

// maxUploadBytes caps in-memory multipart buffering for audio uploads.
const maxUploadBytes = 32 << 20

func (s *Server) handleSpeechUpload(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	data, filename, err := readAudioUpload(r)
	if err != nil {
		writeError(w, err)
		return
	}
	language := r.URL.Query().Get("language")
	if language == "" {
		language = s.deps.DefaultLanguage
	}

	res, err := s.deps.Recognizer.TranscribeFile(r.Context(), data, language)
	if err != nil {
		writeError(w, err)
		return
	}
	info := audio.Probe(data)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"transcription": res.Text,
		"confidence":    res.Confidence,
		"language":      language,
		"filename":      filename,
		"duration":      info.Duration,
	})
}

func (s *Server) handleSpeechLanguages(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]any{
		"supported_languages": s.deps.Languages,
	})
}

func (s *Server) handleSpeechStatus(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	status := "inactive"
	if s.deps.Recognizer.Ready() {
		status = "active"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"service": s.deps.Recognizer.Name(),
		"status":  status,
	})
}

// readAudioUpload pulls the "file" part out of a multipart request and
// rejects anything not declared as audio.
func readAudioUpload(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, "", errorsx.Wrap(err, errorsx.ReasonInvalidInput)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", errorsx.New(errorsx.ReasonInvalidInput, "missing file upload")
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); !strings.HasPrefix(ct, "audio/") {
		return nil, "", errorsx.New(errorsx.ReasonInvalidInput, "file must be an audio format")
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", errorsx.Wrap(err, errorsx.ReasonInvalidInput)
	}
	return data, header.Filename, nil
}
