package career

import (
	"testing"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func workEntry(start, end string) models.CareerEntry {
	return models.CareerEntry{Type: models.EntryTypeWork, DateStart: start, DateEnd: end}
}

func TestParseMonth(t *testing.T) {
	parsed, err := ParseMonth("2020-01", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), parsed)

	present, err := ParseMonth("present", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), present)

	_, err = ParseMonth("garbage", testNow)
	assert.Error(t, err)
}

func TestMergeIntervals(t *testing.T) {
	month := func(y int, m time.Month) time.Time {
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	}

	testCases := []struct {
		name     string
		input    []Interval
		expected []Interval
	}{
		{
			name:     "Empty",
			input:    nil,
			expected: nil,
		},
		{
			name:     "Disjoint intervals stay separate",
			input:    []Interval{{month(2020, 1), month(2020, 6)}, {month(2021, 1), month(2021, 6)}},
			expected: []Interval{{month(2020, 1), month(2020, 6)}, {month(2021, 1), month(2021, 6)}},
		},
		{
			name:     "Overlap merges with max end",
			input:    []Interval{{month(2020, 1), month(2021, 12)}, {month(2021, 6), month(2022, 6)}},
			expected: []Interval{{month(2020, 1), month(2022, 6)}},
		},
		{
			name:     "Contained interval disappears",
			input:    []Interval{{month(2020, 1), month(2022, 1)}, {month(2020, 6), month(2021, 1)}},
			expected: []Interval{{month(2020, 1), month(2022, 1)}},
		},
		{
			name:     "Unsorted input",
			input:    []Interval{{month(2021, 1), month(2021, 6)}, {month(2020, 1), month(2020, 3)}},
			expected: []Interval{{month(2020, 1), month(2020, 3)}, {month(2021, 1), month(2021, 6)}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MergeIntervals(tc.input))
		})
	}
}

func TestTotalExperienceOverlapNotDoubleCounted(t *testing.T) {
	// Job A Jan 2020 - Dec 2021, Job B Jun 2021 - Jun 2022.
	// Merged span Jan 2020 - Jun 2022 is 30 months, not 24+13=37.
	entries := []models.CareerEntry{
		workEntry("2020-01", "2021-12"),
		workEntry("2021-06", "2022-06"),
	}

	assert.Equal(t, 30, TotalExperienceMonths(entries, testNow))
	assert.Equal(t, "2y 6m", TotalExperience(entries, testNow))
}

func TestMergedTotalNeverExceedsNaiveSum(t *testing.T) {
	entries := []models.CareerEntry{
		workEntry("2019-03", "2020-03"),
		workEntry("2019-09", "2021-01"),
		workEntry("2022-01", "2022-06"),
	}

	naive := 0
	for _, e := range entries {
		start, _ := ParseMonth(e.DateStart, testNow)
		end, _ := ParseMonth(e.DateEnd, testNow)
		naive += IntervalMonths(start, end)
	}

	assert.LessOrEqual(t, TotalExperienceMonths(entries, testNow), naive)
}

func TestTotalExperienceEdgeCases(t *testing.T) {
	assert.Equal(t, "0y", TotalExperience(nil, testNow))

	educationOnly := []models.CareerEntry{
		{Type: models.EntryTypeEducation, DateStart: "2016-01", DateEnd: "2020-01"},
	}
	assert.Equal(t, "0y", TotalExperience(educationOnly, testNow))

	subMonth := []models.CareerEntry{workEntry("2024-05", "2024-05")}
	assert.Equal(t, "< 1m", TotalExperience(subMonth, testNow))
}

func TestTotalExperiencePresent(t *testing.T) {
	entries := []models.CareerEntry{workEntry("2023-06", "present")}
	// Jun 2023 through Jun 2024, both endpoint months counted
	assert.Equal(t, "1y 1m", TotalExperience(entries, testNow))
}

func TestFormatMonths(t *testing.T) {
	assert.Equal(t, "< 1m", FormatMonths(0))
	assert.Equal(t, "5m", FormatMonths(5))
	assert.Equal(t, "1y", FormatMonths(12))
	assert.Equal(t, "2y 3m", FormatMonths(27))
}

func TestIntervalMonths(t *testing.T) {
	month := func(y int, m time.Month) time.Time {
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 30, IntervalMonths(month(2020, 1), month(2022, 6)))
	assert.Equal(t, 2, IntervalMonths(month(2024, 5), month(2024, 6)))
	assert.Equal(t, 0, IntervalMonths(month(2024, 5), month(2024, 5)))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "2y", Duration(workEntry("2020-01", "2021-12"), testNow))
	assert.Equal(t, "", Duration(workEntry("bad", "2021-12"), testNow))
}

func TestSortedByStart(t *testing.T) {
	entries := []models.CareerEntry{
		workEntry("2022-01", "present"),
		workEntry("2019-05", "2020-01"),
		workEntry("2020-06", "2021-12"),
	}

	sorted := SortedByStart(entries, testNow)

	assert.Equal(t, "2019-05", sorted[0].DateStart)
	assert.Equal(t, "2020-06", sorted[1].DateStart)
	assert.Equal(t, "2022-01", sorted[2].DateStart)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Present", FormatDate("present", "month_year", testNow))
	assert.Equal(t, "Mar 2021", FormatDate("2021-03", "month_year", testNow))
	assert.Equal(t, "2021", FormatDate("2021-03", "year_only", testNow))
	assert.Equal(t, "•••", FormatDate("2021-03", "hidden", testNow))
}
