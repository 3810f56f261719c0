package mock

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/earshot/earshot/pkg/adapters/stt"
)

// Demo phrases returned for streamed chunks. Each call picks one
// independently; there is no accumulation across calls.
var chunkPhrases = []string{
	"Xin chào, tôi đang nói tiếng Việt",
	"Hôm nay thời tiết rất đẹp",
	"Bạn có nghe thấy tôi không?",
	"Đây là bản demo transcription",
	"Hệ thống đang hoạt động tốt",
}

// Recognizer returns canned transcriptions without touching any external
// service. Randomness is injectable so tests can seed it.
type Recognizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRecognizer(rng *rand.Rand) *Recognizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Recognizer{rng: rng}
}

func (r *Recognizer) Name() string { return "mock_stt" }

func (r *Recognizer) Ready() bool { return true }

func (r *Recognizer) TranscribeFile(ctx context.Context, audio []byte, language string) (stt.Result, error) {
	_ = ctx
	_ = audio
	text := "DEMO MODE: Hello, this is a demo speech-to-text conversion."
	if language == "vi-VN" {
		text = "DEMO MODE: Xin chào, đây là bản demo chuyển đổi giọng nói tiếng Việt thành văn bản."
	}
	return stt.Result{
		Text:       text,
		Confidence: 0.95,
		IsFinal:    true,
		Source:     "mock",
	}, nil
}

func (r *Recognizer) TranscribeChunk(ctx context.Context, audio []byte, language string) (stt.Result, error) {
	_ = ctx
	_ = audio
	_ = language
	r.mu.Lock()
	text := chunkPhrases[r.rng.Intn(len(chunkPhrases))]
	confidence := math.Round((0.80+r.rng.Float64()*0.15)*100) / 100
	final := r.rng.Intn(2) == 0
	r.mu.Unlock()
	return stt.Result{
		Text:       text,
		Confidence: confidence,
		IsFinal:    final,
		Source:     "mock",
	}, nil
}

var _ stt.Recognizer = (*Recognizer)(nil)
