package earshot

import (
	"strings"
	"testing"
)

func TestBuildMockRecognizer(t *testing.T) {
	r := DefaultProviderRegistry()
	rec, err := r.BuildRecognizer("Mock", nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if rec.Name() != "mock_stt" {
		t.Fatalf("unexpected recognizer: %s", rec.Name())
	}
}

func TestBuildUnknownRecognizer(t *testing.T) {
	r := DefaultProviderRegistry()
	if _, err := r.BuildRecognizer("whisper", nil); err == nil {
		t.Fatalf("expected error for unregistered provider")
	}
}

func TestDeepgramRequiresAPIKey(t *testing.T) {
	r := DefaultProviderRegistry()
	_, err := r.BuildRecognizer("deepgram", map[string]any{"model": "nova-2"})
	if err == nil || !strings.Contains(err.Error(), "api_key") {
		t.Fatalf("expected api_key error, got %v", err)
	}
	if _, err := r.BuildRecognizer("deepgram", map[string]any{"api_key": "dg-key"}); err != nil {
		t.Fatalf("build with key: %v", err)
	}
}

func TestTwilioNotifierRequiresCredentials(t *testing.T) {
	r := DefaultProviderRegistry()
	_, err := r.BuildNotifier("twilio", map[string]any{"account_sid": "AC1"})
	if err == nil {
		t.Fatalf("expected error for incomplete credentials")
	}
	_, err = r.BuildNotifier("twilio", map[string]any{
		"account_sid": "AC1",
		"auth_token":  "tok",
		"from_number": "+15550100",
		"to_number":   "+15550199",
	})
	if err != nil {
		t.Fatalf("build twilio: %v", err)
	}
}

func TestNopNotifier(t *testing.T) {
	r := DefaultProviderRegistry()
	if _, err := r.BuildNotifier("nop", nil); err != nil {
		t.Fatalf("build nop: %v", err)
	}
}
