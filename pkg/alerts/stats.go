package alerts

import (
	"fmt"
	"sort"
	"time"
)

// Statistics aggregates the history at call time. Everything is recomputed
// from scratch; there is no incremental bookkeeping.
type Statistics struct {
	Daily       map[string]int `json:"daily"`
	Weekly      map[string]int `json:"weekly"`
	Monthly     map[string]int `json:"monthly"`
	CommonTypes []TypeCount    `json:"common_types"`
}

// TypeCount pairs a sound type with its raw trigger count.
type TypeCount struct {
	SoundType SoundType `json:"sound_type"`
	Count     int       `json:"count"`
}

const day = 24 * time.Hour

// Statistics derives trailing-window counts from the history. The weekly
// windows are 7-day offsets from now and the monthly keys use a 30-day
// approximation rather than calendar months; both quirks are inherited
// behavior and kept intact.
func (r *Registry) Statistics() Statistics {
	r.mu.Lock()
	history := append([]Record(nil), r.history...)
	r.mu.Unlock()
	now := r.now()

	stats := Statistics{
		Daily:   make(map[string]int, 7),
		Weekly:  make(map[string]int, 4),
		Monthly: make(map[string]int, 6),
	}

	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		n := 0
		for _, rec := range history {
			if rec.Timestamp.Format("2006-01-02") == date {
				n++
			}
		}
		stats.Daily[date] = n
	}

	for i := 0; i < 4; i++ {
		weekStart := now.Add(-time.Duration(i) * 7 * day)
		key := fmt.Sprintf("Week %d", i+1)
		n := 0
		for _, rec := range history {
			if !rec.Timestamp.Before(weekStart.Add(-7*day)) && rec.Timestamp.Before(weekStart) {
				n++
			}
		}
		stats.Weekly[key] = n
	}

	for i := 0; i < 6; i++ {
		month := now.Add(-time.Duration(30*i) * day).Format("2006-01")
		n := 0
		for _, rec := range history {
			if rec.Timestamp.Format("2006-01") == month {
				n++
			}
		}
		stats.Monthly[month] = n
	}

	counts := make(map[SoundType]int)
	for _, rec := range history {
		counts[rec.SoundType]++
	}
	for st, n := range counts {
		stats.CommonTypes = append(stats.CommonTypes, TypeCount{SoundType: st, Count: n})
	}
	sort.Slice(stats.CommonTypes, func(i, j int) bool {
		if stats.CommonTypes[i].Count != stats.CommonTypes[j].Count {
			return stats.CommonTypes[i].Count > stats.CommonTypes[j].Count
		}
		return stats.CommonTypes[i].SoundType < stats.CommonTypes[j].SoundType
	})
	if len(stats.CommonTypes) > 5 {
		stats.CommonTypes = stats.CommonTypes[:5]
	}

	return stats
}
