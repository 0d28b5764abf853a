package feed

import (
	"slices"
	"time"
)

// SortNewestFirst returns a copy of notifications ordered by date, most recent
// first. Same-date entries keep their relative order. Dates that fail to parse
// are treated as the earliest possible date.
func SortNewestFirst(notifications []Notification) []Notification {
	sorted := slices.Clone(notifications)

	keys := make(map[string]time.Time, len(sorted))
	for _, n := range sorted {
		if _, ok := keys[n.Date]; ok {
			continue
		}
		t, _ := n.Time()
		keys[n.Date] = t
	}

	slices.SortStableFunc(sorted, func(a, b Notification) int {
		return keys[b.Date].Compare(keys[a.Date])
	})
	return sorted
}
