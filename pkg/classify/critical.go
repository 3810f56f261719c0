package classify

// CriticalSound describes one sound category the alert pipeline watches
// for, with the ontology labels that map onto it.
type CriticalSound struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Classes     []string `json:"yamnet_classes"`
}

// CriticalSounds lists the watched categories in catalog order.
func CriticalSounds() []CriticalSound {
	return []CriticalSound{
		{
			ID:          "fire_alarm",
			Name:        "Fire alarm",
			Description: "Smoke and fire alarm sounds",
			Priority:    "critical",
			Classes:     []string{"Smoke detector, smoke alarm", "Fire alarm"},
		},
		{
			ID:          "doorbell",
			Name:        "Doorbell",
			Description: "Doorbell rings and door knocks",
			Priority:    "medium",
			Classes:     []string{"Doorbell", "Knock"},
		},
		{
			ID:          "baby_cry",
			Name:        "Baby cry",
			Description: "Crying infants and children",
			Priority:    "high",
			Classes:     []string{"Baby cry, infant cry", "Child speech, kid speaking"},
		},
		{
			ID:          "phone_ring",
			Name:        "Phone ring",
			Description: "Telephone and ringtone sounds",
			Priority:    "medium",
			Classes:     []string{"Telephone bell ringing", "Ringtone"},
		},
	}
}
