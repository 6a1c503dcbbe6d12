package career

import (
	"fmt"
	"sort"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
)

// Interval is a closed month range. Start and End are truncated to the
// first of their month, in UTC.
type Interval struct {
	Start time.Time
	End   time.Time
}

// ParseMonth parses a YYYY-MM date string; the "present" sentinel parses
// to the current month
func ParseMonth(value string, now time.Time) (time.Time, error) {
	if value == models.PresentSentinel {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", value, err)
	}
	return t, nil
}

// MergeIntervals folds a set of intervals into non-overlapping spans.
// Adjacent-or-overlapping intervals (next start on or before the current
// end) are merged, taking the later end. The result is sorted by start.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	merged := []Interval{sorted[0]}
	for _, current := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !current.Start.After(last.End) {
			if current.End.After(last.End) {
				last.End = current.End
			}
		} else {
			merged = append(merged, current)
		}
	}

	return merged
}

// MonthsBetween returns the calendar month difference between two month
// starts, not a day count
func MonthsBetween(start, end time.Time) int {
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	return years*12 + months
}

// IntervalMonths counts the months an interval spans, including both
// endpoint months: Jan 2020 through Jun 2022 is 30 months. An interval
// confined to a single month is sub-month and counts as zero.
func IntervalMonths(start, end time.Time) int {
	diff := MonthsBetween(start, end)
	if diff <= 0 {
		return 0
	}
	return diff + 1
}

// WorkIntervals extracts the month intervals of all work entries.
// Entries with unparseable dates are skipped.
func WorkIntervals(entries []models.CareerEntry, now time.Time) []Interval {
	var intervals []Interval
	for _, entry := range entries {
		if entry.Type != models.EntryTypeWork {
			continue
		}
		start, err := ParseMonth(entry.DateStart, now)
		if err != nil {
			continue
		}
		end, err := ParseMonth(entry.DateEnd, now)
		if err != nil {
			continue
		}
		intervals = append(intervals, Interval{Start: start, End: end})
	}
	return intervals
}

// TotalExperience sums the merged work intervals into total months, so a
// period covered by two concurrent jobs counts once, and formats the
// result for display
func TotalExperience(entries []models.CareerEntry, now time.Time) string {
	intervals := WorkIntervals(entries, now)
	if len(intervals) == 0 {
		return "0y"
	}

	totalMonths := 0
	for _, span := range MergeIntervals(intervals) {
		totalMonths += IntervalMonths(span.Start, span.End)
	}

	return FormatMonths(totalMonths)
}

// TotalExperienceMonths returns the merged month total without formatting
func TotalExperienceMonths(entries []models.CareerEntry, now time.Time) int {
	totalMonths := 0
	for _, span := range MergeIntervals(WorkIntervals(entries, now)) {
		totalMonths += IntervalMonths(span.Start, span.End)
	}
	return totalMonths
}

// Duration formats the length of a single entry
func Duration(entry models.CareerEntry, now time.Time) string {
	start, err := ParseMonth(entry.DateStart, now)
	if err != nil {
		return ""
	}
	end, err := ParseMonth(entry.DateEnd, now)
	if err != nil {
		return ""
	}
	return FormatMonths(IntervalMonths(start, end))
}

// FormatMonths renders a month count as "Ny Nm". Zero months is the
// "< 1m" sentinel rather than a numeric zero.
func FormatMonths(totalMonths int) string {
	years := totalMonths / 12
	months := totalMonths % 12

	switch {
	case years > 0 && months > 0:
		return fmt.Sprintf("%dy %dm", years, months)
	case years > 0:
		return fmt.Sprintf("%dy", years)
	case months > 0:
		return fmt.Sprintf("%dm", months)
	default:
		return "< 1m"
	}
}

// SortedByStart returns the timeline entries ordered by start month
func SortedByStart(entries []models.CareerEntry, now time.Time) []models.CareerEntry {
	sorted := make([]models.CareerEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, errA := ParseMonth(sorted[i].DateStart, now)
		b, errB := ParseMonth(sorted[j].DateStart, now)
		if errA != nil || errB != nil {
			return errB != nil && errA == nil
		}
		return a.Before(b)
	})
	return sorted
}

// FormatDate renders a YYYY-MM date according to the privacy mode
func FormatDate(value, mode string, now time.Time) string {
	if value == models.PresentSentinel {
		return "Present"
	}
	date, err := ParseMonth(value, now)
	if err != nil {
		return value
	}

	switch mode {
	case "year_only":
		return date.Format("2006")
	case "hidden":
		return "•••"
	default: // month_year
		return date.Format("Jan 2006")
	}
}
