package alerts

import "time"

// SoundType identifies one of the fixed critical sound categories. The set
// is closed: configuration and triggers for anything else are rejected
// instead of silently creating new keys.
type SoundType string

const (
	SoundFireAlarm SoundType = "fire_alarm"
	SoundDoorbell  SoundType = "doorbell"
	SoundBabyCry   SoundType = "baby_cry"
	SoundPhoneRing SoundType = "phone_ring"
)

// SoundTypes lists every known sound type in catalog order.
func SoundTypes() []SoundType {
	return []SoundType{SoundFireAlarm, SoundDoorbell, SoundBabyCry, SoundPhoneRing}
}

// ParseSoundType maps a wire value onto the fixed set.
func ParseSoundType(s string) (SoundType, bool) {
	switch SoundType(s) {
	case SoundFireAlarm, SoundDoorbell, SoundBabyCry, SoundPhoneRing:
		return SoundType(s), true
	}
	return "", false
}

// Priority ranks how urgently an alert should be surfaced.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
)

// Method is a notification delivery channel.
type Method string

const (
	MethodVisual    Method = "visual"
	MethodVibration Method = "vibration"
	MethodEmail     Method = "email"
)

// Config is the per-sound-type alerting configuration. Sensitivity is the
// minimum confidence required to trigger.
type Config struct {
	Enabled     bool     `json:"enabled"`
	Sensitivity float64  `json:"sensitivity"`
	Methods     []Method `json:"notification_method"`
	Priority    Priority `json:"priority"`
}

// Record is one triggered alert. Immutable once created; only deletion by
// id removes it from history.
type Record struct {
	ID         string    `json:"id"`
	SoundType  SoundType `json:"sound_type"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
	Location   string    `json:"location,omitempty"`
	Priority   Priority  `json:"priority"`
	Methods    []Method  `json:"notification_method"`
}

// CatalogEntry describes a sound type for the settings endpoint.
type CatalogEntry struct {
	Type               SoundType `json:"type"`
	Name               string    `json:"name"`
	DefaultSensitivity float64   `json:"default_sensitivity"`
	Priority           Priority  `json:"priority"`
}

// Catalog returns the static description of every known sound type.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{Type: SoundFireAlarm, Name: "Fire alarm", DefaultSensitivity: 0.8, Priority: PriorityCritical},
		{Type: SoundDoorbell, Name: "Doorbell", DefaultSensitivity: 0.7, Priority: PriorityMedium},
		{Type: SoundBabyCry, Name: "Baby cry", DefaultSensitivity: 0.8, Priority: PriorityHigh},
		{Type: SoundPhoneRing, Name: "Phone ring", DefaultSensitivity: 0.6, Priority: PriorityMedium},
	}
}

// DisplayName resolves the catalog name for a sound type.
func DisplayName(st SoundType) string {
	for _, entry := range Catalog() {
		if entry.Type == st {
			return entry.Name
		}
	}
	return string(st)
}

func defaultSettings() map[SoundType]Config {
	return map[SoundType]Config{
		SoundFireAlarm: {
			Enabled:     true,
			Sensitivity: 0.8,
			Methods:     []Method{MethodVisual, MethodVibration},
			Priority:    PriorityCritical,
		},
		SoundDoorbell: {
			Enabled:     true,
			Sensitivity: 0.7,
			Methods:     []Method{MethodVisual},
			Priority:    PriorityMedium,
		},
		SoundBabyCry: {
			Enabled:     true,
			Sensitivity: 0.8,
			Methods:     []Method{MethodVisual, MethodVibration},
			Priority:    PriorityHigh,
		},
		SoundPhoneRing: {
			Enabled:     true,
			Sensitivity: 0.6,
			Methods:     []Method{MethodVisual},
			Priority:    PriorityMedium,
		},
	}
}
