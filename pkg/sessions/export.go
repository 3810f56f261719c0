package sessions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/earshot/earshot/pkg/errorsx"
)

var exportFormats = map[string]struct{}{
	"txt":  {},
	"docx": {},
	"pdf":  {},
}

// Export renders a session transcript. The rendering is plain text for
// every format; only the returned path carries the format name. Nothing
// is written to durable storage.
func (r *Registry) Export(id, format string) (ExportResult, error) {
	if _, ok := exportFormats[format]; !ok {
		return ExportResult{}, errorsx.Errorf(errorsx.ReasonInvalidInput, "unsupported export format: %s", format)
	}
	tr, err := r.Transcript(id)
	if err != nil {
		return ExportResult{}, err
	}
	return ExportResult{
		Path:    filepath.Join(os.TempDir(), fmt.Sprintf("transcript_%s.%s", id, format)),
		Format:  format,
		Content: renderTranscript(id, tr),
	}, nil
}

func renderTranscript(id string, tr Transcript) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transcript Session: %s\n", id)
	fmt.Fprintf(&b, "Language: %s\n", tr.Language)
	fmt.Fprintf(&b, "Duration: %g seconds\n", tr.Duration)
	fmt.Fprintf(&b, "Participants: %s\n", strings.Join(tr.Participants, ", "))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	for _, seg := range tr.Segments {
		fmt.Fprintf(&b, "[%s] ", seg.Timestamp.Format(time.RFC3339))
		if seg.Speaker != "" {
			fmt.Fprintf(&b, "%s: ", seg.Speaker)
		}
		fmt.Fprintf(&b, "%s (Confidence: %.2f)\n", seg.Text, seg.Confidence)
	}
	return b.String()
}
