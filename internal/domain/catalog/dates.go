package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"time"
)

var dateSep = regexp.MustCompile(`[/\-]`)

// SortByDateDesc returns a copy of items stably sorted by parsed date,
// newest first. Items whose date cannot be parsed sort last, keeping
// their relative order.
func (s *Service) SortByDateDesc(items []Project) []Project {
	out := make([]Project, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return parseDateValue(out[i].Date) > parseDateValue(out[j].Date)
	})
	return out
}

// parseDateValue turns a human-entered date string into a sortable
// millisecond timestamp. Dates are slash- or dash-separated triples
// with no fixed convention: a first component above 12 is read as
// day-month-year, anything else as month-day-year. The heuristic
// cannot disambiguate dates where both day and month are 12 or less;
// those are read month-first whether or not that was meant. Anything
// that does not split into three parts with a numeric first component
// scores epoch zero, so it sorts after every real date.
func parseDateValue(s string) int64 {
	if s == "" {
		return 0
	}
	parts := dateSep.Split(s, -1)
	if len(parts) < 3 {
		return 0
	}
	a, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	b, _ := strconv.Atoi(parts[1])
	c, _ := strconv.Atoi(parts[2])

	month, day := a, b
	if a > 12 { // day-month-year
		day, month = a, b
	}
	return time.Date(c, time.Month(month), day, 0, 0, 0, 0, time.UTC).UnixMilli()
}
