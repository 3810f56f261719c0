package classify

import "testing"

func TestClassifyAudioTopK(t *testing.T) {
	c := New()

	res := c.ClassifyAudio(nil, 3)
	if len(res.Classifications) != 3 {
		t.Fatalf("expected 3 predictions, got %d", len(res.Classifications))
	}
	if res.TopPrediction.Class != "Speech" {
		t.Fatalf("expected Speech on top, got %s", res.TopPrediction.Class)
	}
	for i := 1; i < len(res.Classifications); i++ {
		if res.Classifications[i].Confidence > res.Classifications[i-1].Confidence {
			t.Fatalf("predictions not ranked descending")
		}
	}

	all := c.ClassifyAudio(nil, 0)
	if len(all.Classifications) != 5 {
		t.Fatalf("expected full list for topK=0, got %d", len(all.Classifications))
	}
}

func TestDetectCritical(t *testing.T) {
	c := New()
	res := c.DetectCritical(nil)
	if !res.Detected {
		t.Fatalf("expected detection above floor")
	}
	if res.SoundType != "doorbell" {
		t.Fatalf("expected doorbell as strongest score, got %s", res.SoundType)
	}
	if res.AlertLevel != "medium" {
		t.Fatalf("unexpected alert level %s", res.AlertLevel)
	}
}

func TestClassesCatalog(t *testing.T) {
	c := New()
	classes := c.Classes()
	if len(classes) == 0 {
		t.Fatalf("expected non-empty catalog")
	}
	found := map[string]bool{}
	for _, name := range classes {
		found[name] = true
	}
	for _, want := range []string{"Fire alarm", "Doorbell", "Baby cry, infant cry", "Telephone bell ringing"} {
		if !found[want] {
			t.Fatalf("catalog missing %q", want)
		}
	}

	classes[0] = "mutated"
	if c.Classes()[0] == "mutated" {
		t.Fatalf("Classes must return a copy")
	}
}
