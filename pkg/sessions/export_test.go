package sessions

import (
	"context"
	"strings"
	"testing"

	"github.com/earshot/earshot/pkg/adapters/stt"
	"github.com/earshot/earshot/pkg/errorsx"
)

func TestExportRejectsUnknownFormat(t *testing.T) {
	r := newTestRegistry(&scriptedRecognizer{})
	id := r.Start("vi-VN", nil)
	_, err := r.Export(id, "csv")
	if err == nil || !errorsx.HasReason(err, errorsx.ReasonInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestExportUnknownSession(t *testing.T) {
	r := newTestRegistry(&scriptedRecognizer{})
	_, err := r.Export("missing", "txt")
	if err == nil || !errorsx.HasReason(err, errorsx.ReasonNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestExportRendersTranscript(t *testing.T) {
	rec := &scriptedRecognizer{results: []stt.Result{
		{Text: "hello there", Confidence: 0.91, IsFinal: true},
	}}
	r := newTestRegistry(rec)
	id := r.Start("en-US", []string{"alice"})
	if _, err := r.ProcessChunk(context.Background(), id, []byte{1}); err != nil {
		t.Fatalf("chunk: %v", err)
	}
	if _, err := r.End(id); err != nil {
		t.Fatalf("end: %v", err)
	}

	for _, format := range []string{"txt", "docx", "pdf"} {
		res, err := r.Export(id, format)
		if err != nil {
			t.Fatalf("export %s: %v", format, err)
		}
		if res.Format != format || !strings.HasSuffix(res.Path, "transcript_"+id+"."+format) {
			t.Fatalf("unexpected export result: %+v", res)
		}
		for _, want := range []string{
			"Transcript Session: " + id,
			"Language: en-US",
			"Participants: alice",
			"hello there (Confidence: 0.91)",
		} {
			if !strings.Contains(res.Content, want) {
				t.Fatalf("export %s missing %q:\n%s", format, want, res.Content)
			}
		}
	}
}
