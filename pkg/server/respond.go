package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/earshot/earshot/pkg/errorsx"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a reason code onto an HTTP status and emits the
// original API's error shape.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errorsx.Reason(err) {
	case errorsx.ReasonNotFound:
		status = http.StatusNotFound
	case errorsx.ReasonInvalidInput:
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"detail": err.Error()})
}

// queryInt parses an integer query parameter, falling back when absent.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errorsx.Errorf(errorsx.ReasonInvalidInput, "invalid %s: %s", name, raw)
	}
	return v, nil
}
