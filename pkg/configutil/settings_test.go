package configutil

import "testing"

func TestDecodeSettingsNormalizesKeys(t *testing.T) {
	var out struct {
		APIKey   string `mapstructure:"api_key"`
		Model    string `mapstructure:"model"`
		Language string `mapstructure:"language"`
	}
	input := map[string]any{
		"API-Key":  "dg-secret",
		"MODEL":    "nova-2",
		"language": "vi",
	}
	if err := DecodeSettings(input, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.APIKey != "dg-secret" || out.Model != "nova-2" || out.Language != "vi" {
		t.Fatalf("unexpected decode result: %+v", out)
	}
}

func TestRequireString(t *testing.T) {
	if err := RequireString("  ", "recognizer.settings.api_key"); err == nil {
		t.Fatalf("expected error for blank value")
	}
	if err := RequireString("ok", "recognizer.settings.api_key"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPointerFallbacks(t *testing.T) {
	if BoolValue(nil, true) != true {
		t.Fatalf("expected fallback true")
	}
	v := false
	if BoolValue(&v, true) != false {
		t.Fatalf("expected explicit false")
	}
	if Float64Value(nil, 0.7) != 0.7 {
		t.Fatalf("expected fallback 0.7")
	}
	f := 0.25
	if Float64Value(&f, 0.7) != 0.25 {
		t.Fatalf("expected explicit 0.25")
	}
}
