package earshot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewAppWiresRegistries(t *testing.T) {
	cfg := Config{
		Recognizer: VendorConfig{Provider: "mock"},
		Notifier:   NotifierConfig{Provider: "nop"},
		Languages: LanguageConfig{
			Default:   "vi-VN",
			Supported: []LanguageEntry{{Code: "vi-VN", Name: "Tiếng Việt"}},
		},
	}
	app, err := NewApp(cfg, nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if app.Alerts == nil || app.Sessions == nil {
		t.Fatalf("registries not wired")
	}
	if err := app.Drain(); err != nil {
		t.Fatalf("drain: %v", err)
	}
}

func TestNewAppUnknownProviderFails(t *testing.T) {
	cfg := Config{
		Recognizer: VendorConfig{Provider: "whisper"},
		Notifier:   NotifierConfig{Provider: "nop"},
	}
	if _, err := NewApp(cfg, nil); err == nil {
		t.Fatalf("expected error for unknown recognizer")
	}
}

func TestNewAppWritesMetricsArtifact(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Recognizer:    VendorConfig{Provider: "mock"},
		Notifier:      NotifierConfig{Provider: "nop"},
		Observability: ObservabilityConfig{ArtifactsDir: filepath.Join(dir, "artifacts")},
	}
	app, err := NewApp(cfg, nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	app.Alerts.Trigger("doorbell", 0.99, "hallway")
	if err := app.Drain(); err != nil {
		t.Fatalf("drain: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "artifacts", "metrics.jsonl"))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected metric lines in artifact")
	}
}
