package mock

import (
	"context"
	"math/rand"
	"testing"
)

func TestTranscribeFilePicksLanguage(t *testing.T) {
	r := NewRecognizer(rand.New(rand.NewSource(1)))

	res, err := r.TranscribeFile(context.Background(), nil, "vi-VN")
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if res.Text == "" || res.Confidence != 0.95 || !res.IsFinal {
		t.Fatalf("unexpected result: %+v", res)
	}

	en, err := r.TranscribeFile(context.Background(), nil, "en-US")
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if en.Text == res.Text {
		t.Fatalf("expected language-specific phrases")
	}
}

func TestTranscribeChunkBounds(t *testing.T) {
	r := NewRecognizer(rand.New(rand.NewSource(42)))
	sawFinal := false
	sawInterim := false
	for i := 0; i < 50; i++ {
		res, err := r.TranscribeChunk(context.Background(), []byte{0x01}, "vi-VN")
		if err != nil {
			t.Fatalf("chunk: %v", err)
		}
		if res.Text == "" {
			t.Fatalf("empty phrase")
		}
		if res.Confidence < 0.80 || res.Confidence > 0.95 {
			t.Fatalf("confidence out of range: %f", res.Confidence)
		}
		if res.IsFinal {
			sawFinal = true
		} else {
			sawInterim = true
		}
	}
	if !sawFinal || !sawInterim {
		t.Fatalf("expected both final and interim results over 50 draws")
	}
}

func TestSeededRecognizerIsDeterministic(t *testing.T) {
	a := NewRecognizer(rand.New(rand.NewSource(7)))
	b := NewRecognizer(rand.New(rand.NewSource(7)))
	for i := 0; i < 10; i++ {
		ra, _ := a.TranscribeChunk(context.Background(), nil, "vi-VN")
		rb, _ := b.TranscribeChunk(context.Background(), nil, "vi-VN")
		if ra != rb {
			t.Fatalf("expected identical draws, got %+v vs %+v", ra, rb)
		}
	}
}
