package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/earshot/earshot/pkg/configutil"
	"github.com/earshot/earshot/pkg/logging"
	"github.com/earshot/earshot/pkg/metrics"
)

// Setting is one configuration request entry. Nil fields fall back to the
// wire defaults (enabled, sensitivity 0.7, visual only).
type Setting struct {
	SoundType   string   `json:"sound_type"`
	Enabled     *bool    `json:"enabled"`
	Sensitivity *float64 `json:"sensitivity"`
	Methods     []Method `json:"notification_method"`
}

// TriggerResult reports the outcome of a trigger attempt. Reason is set
// only when Triggered is false.
type TriggerResult struct {
	Triggered bool     `json:"triggered"`
	Reason    string   `json:"reason,omitempty"`
	AlertID   string   `json:"alert_id,omitempty"`
	Priority  Priority `json:"priority,omitempty"`
	Methods   []Method `json:"notification_method,omitempty"`
}

// ComponentResult is one sound type's outcome in a self-test run.
type ComponentResult struct {
	Component SoundType     `json:"component"`
	Status    string        `json:"status"`
	Details   TriggerResult `json:"details"`
}

const (
	reasonUnknownType    = "Unknown sound type"
	reasonDisabled       = "Alert disabled"
	reasonBelowThreshold = "Below sensitivity threshold"
)

// Registry owns the per-sound-type configuration and the append-only
// trigger history. It is safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	settings map[SoundType]Config
	history  []Record
	seq      int

	notifier Notifier
	obs      metrics.Observer
	now      func() time.Time
	logger   *slog.Logger
}

type Option func(*Registry)

// WithNotifier attaches an external notification channel for triggered
// alerts.
func WithNotifier(n Notifier) Option {
	return func(r *Registry) { r.notifier = n }
}

// WithClock injects the time source; statistics windows are computed
// relative to it.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

func WithObserver(obs metrics.Observer) Option {
	return func(r *Registry) { r.obs = obs }
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		settings: defaultSettings(),
		obs:      metrics.NoopObserver{},
		now:      time.Now,
		logger:   logging.NewComponentLogger(slog.Default(), "alerts"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Configure overwrites the configuration of every known sound type named
// in entries. Unknown sound types are skipped. The returned count covers
// all entries, skipped ones included, matching the original API contract.
func (r *Registry) Configure(entries []Setting) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range entries {
		st, ok := ParseSoundType(entry.SoundType)
		if !ok {
			r.logger.Debug("configure_skipped_unknown_type", "sound_type", entry.SoundType)
			continue
		}
		cfg := r.settings[st]
		cfg.Enabled = configutil.BoolValue(entry.Enabled, true)
		cfg.Sensitivity = configutil.Float64Value(entry.Sensitivity, 0.7)
		if entry.Methods != nil {
			cfg.Methods = append([]Method(nil), entry.Methods...)
		} else {
			cfg.Methods = []Method{MethodVisual}
		}
		r.settings[st] = cfg
	}
	return len(entries)
}

// Settings returns the full configuration mapping, built-in defaults
// included.
func (r *Registry) Settings() map[SoundType]Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[SoundType]Config, len(r.settings))
	for st, cfg := range r.settings {
		cfg.Methods = append([]Method(nil), cfg.Methods...)
		out[st] = cfg
	}
	return out
}

// Trigger evaluates a detection against the sound type's configuration and
// appends a Record when it passes. Notification dispatch never blocks or
// fails the trigger path.
func (r *Registry) Trigger(soundType string, confidence float64, location string) TriggerResult {
	st, ok := ParseSoundType(soundType)
	if !ok {
		return TriggerResult{Reason: reasonUnknownType}
	}

	r.mu.Lock()
	cfg := r.settings[st]
	if !cfg.Enabled {
		r.mu.Unlock()
		return TriggerResult{Reason: reasonDisabled}
	}
	if confidence < cfg.Sensitivity {
		r.mu.Unlock()
		return TriggerResult{Reason: reasonBelowThreshold}
	}

	r.seq++
	rec := Record{
		ID:         fmt.Sprintf("alert_%d", r.seq),
		SoundType:  st,
		Confidence: confidence,
		Timestamp:  r.now(),
		Location:   location,
		Priority:   cfg.Priority,
		Methods:    append([]Method(nil), cfg.Methods...),
	}
	r.history = append(r.history, rec)
	r.mu.Unlock()

	r.obs.RecordEvent(metrics.Event{
		Name:  "alert_triggered",
		Time:  rec.Timestamp,
		Value: confidence,
		Tags: map[string]string{
			"sound_type": string(st),
			"priority":   string(rec.Priority),
		},
	})
	r.dispatch(rec)

	return TriggerResult{
		Triggered: true,
		AlertID:   rec.ID,
		Priority:  rec.Priority,
		Methods:   rec.Methods,
	}
}

func (r *Registry) dispatch(rec Record) {
	if r.notifier == nil {
		return
	}
	go func() {
		if err := r.notifier.Notify(context.Background(), rec); err != nil {
			r.logger.Warn("alert_notify_failed", "alert_id", rec.ID, "error", err.Error())
		}
	}()
}

// History returns up to limit records, newest first, optionally filtered
// by sound type. An empty soundType means no filter; a zero limit returns
// an empty list and negatives are treated as zero.
func (r *Registry) History(limit int, soundType string) []Record {
	if limit < 0 {
		limit = 0
	}
	r.mu.Lock()
	out := make([]Record, 0, len(r.history))
	for _, rec := range r.history {
		if soundType != "" && string(rec.SoundType) != soundType {
			continue
		}
		out = append(out, rec)
	}
	r.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Delete removes the first record with a matching id. It reports whether
// one was found; a miss mutates nothing.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.history {
		if rec.ID == id {
			r.history = append(r.history[:i], r.history[i+1:]...)
			return true
		}
	}
	return false
}

// SelfTest triggers every configured sound type with a fixed high
// confidence. Test records land in real history; callers cannot tell them
// apart afterwards.
func (r *Registry) SelfTest() []ComponentResult {
	out := make([]ComponentResult, 0, len(SoundTypes()))
	for _, st := range SoundTypes() {
		res := r.Trigger(string(st), 0.9, "Test Location")
		status := "failed"
		if res.Triggered {
			status = "success"
		}
		out = append(out, ComponentResult{Component: st, Status: status, Details: res})
	}
	return out
}
