package sessions

import "time"

// Status tracks a session's lifecycle. A session is active from Start
// until End, then completed forever.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Segment is one finalized unit of transcribed text. Interim results are
// returned to callers but never stored.
type Segment struct {
	Text       string    `json:"text"`
	Confidence float64   `json:"confidence"`
	IsFinal    bool      `json:"is_final"`
	Timestamp  time.Time `json:"timestamp"`
	Speaker    string    `json:"speaker,omitempty"`
}

// Session is one continuous transcription interaction.
type Session struct {
	ID           string
	Language     string
	Participants []string
	StartTime    time.Time
	EndTime      time.Time // zero until completed
	Segments     []Segment
	Status       Status
	Duration     float64 // seconds, set at End
}

// Summary is the listing shape for a session.
type Summary struct {
	SessionID    string     `json:"session_id"`
	Language     string     `json:"language"`
	Participants []string   `json:"participants"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	Status       Status     `json:"status"`
	SegmentCount int        `json:"segment_count"`
	Duration     float64    `json:"duration"`
}

// Transcript is the full readout of a session.
type Transcript struct {
	Segments     []Segment `json:"segments"`
	Summary      string    `json:"summary"`
	Participants []string  `json:"participants"`
	Duration     float64   `json:"duration"`
	Language     string    `json:"language"`
}

// ChunkResult is what one processed audio chunk yields.
type ChunkResult struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	IsFinal    bool    `json:"is_final"`
	SessionID  string  `json:"session_id"`
}

// EndResult reports the outcome of ending a session.
type EndResult struct {
	TotalSegments int     `json:"total_segments"`
	Duration      float64 `json:"duration"`
}

// ExportResult is a rendered transcript export. Content is the plain-text
// rendering used for every format; nothing is written to durable storage.
type ExportResult struct {
	Path    string `json:"file_path"`
	Format  string `json:"format"`
	Content string `json:"-"`
}
