package earshot

import (
	"fmt"
	"strings"

	"github.com/earshot/earshot/pkg/adapters/stt"
	"github.com/earshot/earshot/pkg/alerts"
	"github.com/earshot/earshot/pkg/configutil"
	"github.com/earshot/earshot/pkg/providers/deepgram"
	"github.com/earshot/earshot/pkg/providers/mock"
)

type RecognizerFactory func(settings map[string]any) (stt.Recognizer, error)
type NotifierFactory func(settings map[string]any) (alerts.Notifier, error)

// ProviderRegistry maps configured provider names onto factories.
type ProviderRegistry struct {
	recognizers map[string]RecognizerFactory
	notifiers   map[string]NotifierFactory
}

func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		recognizers: make(map[string]RecognizerFactory),
		notifiers:   make(map[string]NotifierFactory),
	}
}

func (r *ProviderRegistry) RegisterRecognizer(name string, factory RecognizerFactory) {
	r.recognizers[normalizeName(name)] = factory
}

func (r *ProviderRegistry) RegisterNotifier(name string, factory NotifierFactory) {
	r.notifiers[normalizeName(name)] = factory
}

func (r *ProviderRegistry) BuildRecognizer(provider string, settings map[string]any) (stt.Recognizer, error) {
	fn := r.recognizers[normalizeName(provider)]
	if fn == nil {
		return nil, fmt.Errorf("recognizer provider not registered: %s", provider)
	}
	return fn(settings)
}

func (r *ProviderRegistry) BuildNotifier(provider string, settings map[string]any) (alerts.Notifier, error) {
	fn := r.notifiers[normalizeName(provider)]
	if fn == nil {
		return nil, fmt.Errorf("notifier provider not registered: %s", provider)
	}
	return fn(settings)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DefaultProviderRegistry wires every built-in provider.
func DefaultProviderRegistry() *ProviderRegistry {
	r := NewProviderRegistry()

	r.RegisterRecognizer("mock", func(settings map[string]any) (stt.Recognizer, error) {
		_ = settings
		return mock.NewRecognizer(nil), nil
	})
	r.RegisterRecognizer("deepgram", func(settings map[string]any) (stt.Recognizer, error) {
		var cfg deepgram.Config
		if err := configutil.DecodeSettings(settings, &cfg); err != nil {
			return nil, fmt.Errorf("decode deepgram settings: %w", err)
		}
		if err := configutil.RequireString(cfg.APIKey, "recognizer.settings.api_key"); err != nil {
			return nil, err
		}
		return deepgram.New(cfg), nil
	})

	r.RegisterNotifier("nop", func(map[string]any) (alerts.Notifier, error) {
		return alerts.NopNotifier{}, nil
	})
	r.RegisterNotifier("twilio", func(settings map[string]any) (alerts.Notifier, error) {
		var cfg alerts.TwilioConfig
		if err := configutil.DecodeSettings(settings, &cfg); err != nil {
			return nil, fmt.Errorf("decode twilio settings: %w", err)
		}
		if !cfg.Enabled() {
			return nil, fmt.Errorf("notifier.settings: twilio credentials are incomplete")
		}
		return alerts.NewTwilioNotifier(cfg), nil
	})

	return r
}
