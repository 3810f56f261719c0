package deepgram

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	prerecorded "github.com/deepgram/deepgram-go-sdk/v3/pkg/api/listen/v1/rest"
	interfaces "github.com/deepgram/deepgram-go-sdk/v3/pkg/client/interfaces"
	client "github.com/deepgram/deepgram-go-sdk/v3/pkg/client/listen"

	"github.com/earshot/earshot/pkg/adapters/stt"
	"github.com/earshot/earshot/pkg/errorsx"
	"github.com/earshot/earshot/pkg/logging"
)

type Config struct {
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	Language string `mapstructure:"language"`
}

// Recognizer performs prerecorded recognition against Deepgram. Each call
// is exactly one synchronous request; the first alternative is returned
// verbatim. No retry, no chunk assembly, no resampling.
type Recognizer struct {
	cfg    Config
	api    *prerecorded.Client
	logger *slog.Logger
}

func New(cfg Config) *Recognizer {
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "nova-2"
	}
	rest := client.NewREST(cfg.APIKey, &interfaces.ClientOptions{})
	return &Recognizer{
		cfg:    cfg,
		api:    prerecorded.New(rest),
		logger: logging.NewComponentLogger(slog.Default(), "deepgram_stt"),
	}
}

func (r *Recognizer) Name() string { return "deepgram_stt" }

func (r *Recognizer) Ready() bool {
	return strings.TrimSpace(r.cfg.APIKey) != ""
}

func (r *Recognizer) TranscribeFile(ctx context.Context, audio []byte, language string) (stt.Result, error) {
	return r.recognize(ctx, audio, language, true)
}

// TranscribeChunk reuses the prerecorded path; results are reported as
// interim since a lone chunk carries no utterance boundary.
func (r *Recognizer) TranscribeChunk(ctx context.Context, audio []byte, language string) (stt.Result, error) {
	return r.recognize(ctx, audio, language, false)
}

func (r *Recognizer) recognize(ctx context.Context, audio []byte, language string, final bool) (stt.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	options := &interfaces.PreRecordedTranscriptionOptions{
		Model:       r.cfg.Model,
		Language:    r.language(language),
		SmartFormat: true,
		Punctuate:   true,
	}
	res, err := r.api.FromStream(ctx, bytes.NewReader(audio), options)
	if err != nil {
		r.logger.Error("deepgram_recognize_failed", "error", err.Error())
		return stt.Result{}, errorsx.Wrap(err, errorsx.ReasonRecognize)
	}
	if res == nil || len(res.Results.Channels) == 0 || len(res.Results.Channels[0].Alternatives) == 0 {
		return stt.Result{IsFinal: final, Source: "deepgram"}, nil
	}
	alt := res.Results.Channels[0].Alternatives[0]
	return stt.Result{
		Text:       alt.Transcript,
		Confidence: alt.Confidence,
		IsFinal:    final,
		Source:     "deepgram",
	}, nil
}

func (r *Recognizer) language(override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return r.cfg.Language
}

var _ stt.Recognizer = (*Recognizer)(nil)
