package services

import (
	"cmp"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"slices"
	"strings"
)

// MergeLogs concatenates the trip logs of all vehicles, in vehicle order,
// and sorts them by time. Entries with equal time keep their relative order.
func MergeLogs(vehicles []*domain.Vehicle) []domain.LogEntry {
	n := 0
	for _, v := range vehicles {
		n += len(v.Log())
	}

	entries := make([]domain.LogEntry, 0, n)
	for _, v := range vehicles {
		entries = append(entries, v.Log()...)
	}

	slices.SortStableFunc(entries, func(a, b domain.LogEntry) int {
		return cmp.Compare(a.Time, b.Time)
	})
	return entries
}

// FormatLogEntry renders an entry as a single key=value line.
func FormatLogEntry(e domain.LogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "time=%d vehicle=%s station=%s loaded=[%s] dropped=[%s]",
		e.Time, e.Vehicle, e.Station,
		strings.Join(e.LoadedPackages, ","), strings.Join(e.DroppedPackages, ","),
	)
	if e.HasNext() {
		fmt.Fprintf(&b, " next=%s route=%s duration=%d", e.NextStation, e.NextRoute, e.NextDuration)
	}
	return b.String()
}
