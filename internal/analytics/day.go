package analytics

import (
	"math"
	"sort"
	"time"

	"habitdash/internal/models"
)

var instantFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DateFormat,
}

// dayOf returns the YYYY-MM-DD day an entry date string falls on. Only the
// leading date is considered, so any time-of-day component is ignored.
func dayOf(raw string) (string, bool) {
	if len(raw) < len(DateFormat) {
		return "", false
	}
	day := raw[:len(DateFormat)]
	if _, err := time.Parse(DateFormat, day); err != nil {
		return "", false
	}
	return day, true
}

func parseDay(day string) time.Time {
	t, _ := time.Parse(DateFormat, day)
	return t
}

func parseInstant(raw string) (time.Time, bool) {
	for _, layout := range instantFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sortEntries returns a copy of entries in ascending day order, breaking
// ties within a day by time of day when both dates carry one. Entries with
// no recognizable day keep their relative order at the end.
func sortEntries(entries []models.Entry) []models.Entry {
	type keyed struct {
		entry models.Entry
		day   string
		hasAt bool
		at    time.Time
	}
	ks := make([]keyed, 0, len(entries))
	var undated []models.Entry
	for _, e := range entries {
		day, ok := dayOf(e.Date)
		if !ok {
			undated = append(undated, e)
			continue
		}
		at, hasAt := parseInstant(e.Date)
		ks = append(ks, keyed{e, day, hasAt, at})
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].day != ks[j].day {
			return ks[i].day < ks[j].day
		}
		if ks[i].hasAt && ks[j].hasAt {
			return ks[i].at.Before(ks[j].at)
		}
		return false
	})

	sorted := make([]models.Entry, 0, len(entries))
	for _, k := range ks {
		sorted = append(sorted, k.entry)
	}
	return append(sorted, undated...)
}

// indexByDay maps each day to the first entry recorded for it.
func indexByDay(entries []models.Entry) map[string]models.Entry {
	idx := make(map[string]models.Entry, len(entries))
	for _, e := range entries {
		day, ok := dayOf(e.Date)
		if !ok {
			continue
		}
		if _, seen := idx[day]; !seen {
			idx[day] = e
		}
	}
	return idx
}

func percent(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}
