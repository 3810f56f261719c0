package earshot

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "environment: test\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":8000" {
		t.Fatalf("expected default addr, got %s", cfg.Server.Addr)
	}
	if cfg.Recognizer.Provider != "mock" || cfg.Notifier.Provider != "nop" {
		t.Fatalf("unexpected provider defaults: %+v", cfg)
	}
	if cfg.Languages.Default != "vi-VN" || len(cfg.Languages.Supported) != 2 {
		t.Fatalf("unexpected language defaults: %+v", cfg.Languages)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected log defaults: %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadConfigExpandsEnv(t *testing.T) {
	t.Setenv("TEST_DG_KEY", "secret-key")
	path := writeConfig(t, `
recognizer:
  provider: deepgram
  settings:
    api_key: ${TEST_DG_KEY}
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.Recognizer.Settings["api_key"]; got != "secret-key" {
		t.Fatalf("env not expanded: %v", got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestServerLanguagesMarksDefault(t *testing.T) {
	cfg := Config{
		Languages: LanguageConfig{
			Default: "en-US",
			Supported: []LanguageEntry{
				{Code: "vi-VN", Name: "Tiếng Việt"},
				{Code: "en-US", Name: "English"},
			},
		},
	}
	langs := cfg.ServerLanguages()
	if len(langs) != 2 || langs[0].Default || !langs[1].Default {
		t.Fatalf("unexpected languages: %+v", langs)
	}
}
