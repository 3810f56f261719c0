package sessions

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/earshot/earshot/pkg/adapters/stt"
	"github.com/earshot/earshot/pkg/errorsx"
	"github.com/earshot/earshot/pkg/logging"
	"github.com/earshot/earshot/pkg/metrics"
)

const summaryMaxChars = 200

// Registry owns active and completed transcription sessions. A session id
// is unique across both sets; a session moves active to history exactly
// once and is never mutated after completion.
type Registry struct {
	mu      sync.Mutex
	active  map[string]*Session
	history []*Session

	recognizer stt.Recognizer
	obs        metrics.Observer
	now        func() time.Time
	newID      func() string
	logger     *slog.Logger
}

type Option func(*Registry)

// WithClock injects the time source used for segment timestamps and
// durations.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithIDFunc injects the session id generator.
func WithIDFunc(newID func() string) Option {
	return func(r *Registry) { r.newID = newID }
}

func WithObserver(obs metrics.Observer) Option {
	return func(r *Registry) { r.obs = obs }
}

func NewRegistry(recognizer stt.Recognizer, opts ...Option) *Registry {
	r := &Registry{
		active:     make(map[string]*Session),
		recognizer: recognizer,
		obs:        metrics.NoopObserver{},
		now:        time.Now,
		newID:      uuid.NewString,
		logger:     logging.NewComponentLogger(slog.Default(), "sessions"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start creates a fresh active session and returns its id.
func (r *Registry) Start(language string, participants []string) string {
	if strings.TrimSpace(language) == "" {
		language = "vi-VN"
	}
	if participants == nil {
		participants = []string{}
	}
	sess := &Session{
		ID:           r.newID(),
		Language:     language,
		Participants: append([]string(nil), participants...),
		StartTime:    r.now(),
		Status:       StatusActive,
	}
	r.mu.Lock()
	r.active[sess.ID] = sess
	r.mu.Unlock()
	r.logger.Info("session_started", "session_id", sess.ID, "language", language)
	return sess.ID
}

// ProcessChunk transcribes one audio chunk for an active session. The
// resulting segment is persisted iff the recognizer marks it final.
func (r *Registry) ProcessChunk(ctx context.Context, id string, audio []byte) (ChunkResult, error) {
	r.mu.Lock()
	sess, ok := r.active[id]
	if !ok {
		r.mu.Unlock()
		return ChunkResult{}, errorsx.New(errorsx.ReasonNotFound, "session not found")
	}
	language := sess.Language
	r.mu.Unlock()

	// Recognition happens outside the lock; the external call may block.
	res, err := r.recognizer.TranscribeChunk(ctx, audio, language)
	if err != nil {
		return ChunkResult{}, errorsx.Wrap(err, errorsx.ReasonRecognize)
	}

	if res.IsFinal {
		seg := Segment{
			Text:       res.Text,
			Confidence: res.Confidence,
			IsFinal:    true,
			Timestamp:  r.now(),
		}
		r.mu.Lock()
		// The session may have ended while recognition was in flight;
		// completed sessions are never mutated.
		if sess, ok := r.active[id]; ok {
			sess.Segments = append(sess.Segments, seg)
		}
		r.mu.Unlock()
		r.obs.RecordEvent(metrics.Event{
			Name:  "segment_final",
			Time:  seg.Timestamp,
			Value: seg.Confidence,
			Tags:  map[string]string{"session_id": id},
		})
	}

	return ChunkResult{
		Text:       res.Text,
		Confidence: res.Confidence,
		IsFinal:    res.IsFinal,
		SessionID:  id,
	}, nil
}

// End completes an active session and moves it into history. Ending twice
// fails with not-found since the id is no longer active.
func (r *Registry) End(id string) (EndResult, error) {
	r.mu.Lock()
	sess, ok := r.active[id]
	if !ok {
		r.mu.Unlock()
		return EndResult{}, errorsx.New(errorsx.ReasonNotFound, "session not found")
	}
	sess.EndTime = r.now()
	sess.Status = StatusCompleted
	sess.Duration = sess.EndTime.Sub(sess.StartTime).Seconds()
	delete(r.active, id)
	r.history = append(r.history, sess)
	result := EndResult{TotalSegments: len(sess.Segments), Duration: sess.Duration}
	r.mu.Unlock()

	r.logger.Info("session_ended", "session_id", id,
		"segments", result.TotalSegments, "duration", result.Duration)
	return result, nil
}

// Transcript returns the full readout of an active or completed session.
func (r *Registry) Transcript(id string) (Transcript, error) {
	r.mu.Lock()
	sess := r.find(id)
	if sess == nil {
		r.mu.Unlock()
		return Transcript{}, errorsx.New(errorsx.ReasonNotFound, "session not found")
	}
	segments := append([]Segment{}, sess.Segments...)
	participants := append([]string{}, sess.Participants...)
	duration := sess.Duration
	language := sess.Language
	r.mu.Unlock()

	texts := make([]string, len(segments))
	for i, seg := range segments {
		texts[i] = seg.Text
	}
	summary := strings.Join(texts, " ")
	// Truncate by rune count, not bytes; a byte cut can land inside a
	// multibyte character and leave the summary invalid UTF-8.
	if runes := []rune(summary); len(runes) > summaryMaxChars {
		summary = string(runes[:summaryMaxChars]) + "..."
	}

	return Transcript{
		Segments:     segments,
		Summary:      summary,
		Participants: participants,
		Duration:     duration,
		Language:     language,
	}, nil
}

// Recent merges active and completed sessions, newest start first. A
// limit of zero returns an empty list; negatives are treated as zero.
func (r *Registry) Recent(limit int) []Summary {
	if limit < 0 {
		limit = 0
	}
	r.mu.Lock()
	all := make([]*Session, 0, len(r.active)+len(r.history))
	for _, sess := range r.active {
		all = append(all, sess)
	}
	all = append(all, r.history...)
	out := make([]Summary, 0, len(all))
	for _, sess := range all {
		out = append(out, summarize(sess))
	}
	r.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Delete removes a session from the active set if present, else from
// history. It reports whether one was found.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.active[id]; ok {
		delete(r.active, id)
		return true
	}
	for i, sess := range r.history {
		if sess.ID == id {
			r.history = append(r.history[:i], r.history[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Registry) find(id string) *Session {
	if sess, ok := r.active[id]; ok {
		return sess
	}
	for _, sess := range r.history {
		if sess.ID == id {
			return sess
		}
	}
	return nil
}

func summarize(sess *Session) Summary {
	s := Summary{
		SessionID:    sess.ID,
		Language:     sess.Language,
		Participants: append([]string{}, sess.Participants...),
		StartTime:    sess.StartTime,
		Status:       sess.Status,
		SegmentCount: len(sess.Segments),
		Duration:     sess.Duration,
	}
	if !sess.EndTime.IsZero() {
		end := sess.EndTime
		s.EndTime = &end
	}
	return s
}
