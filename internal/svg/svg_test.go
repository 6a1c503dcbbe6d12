package svg

import (
	"strings"
	"testing"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var renderNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testRenderer() *Renderer {
	return NewRenderer(DefaultTheme(), renderNow)
}

func sampleMetrics() models.Metrics {
	return models.Metrics{
		Username:     "octocat",
		TotalCommits: 250,
		TotalRepos:   12,
		TotalPRs:     30,
		TotalStars:   45,
		Contributors: 3,
		Streak:       models.Streak{Current: 5, Longest: 21},
		TopLanguages: []models.LanguageCount{
			{Name: "Go", Count: 6},
			{Name: "Python", Count: 4},
			{Name: "TypeScript", Count: 2},
		},
		DailyStats: models.DailyStats{
			CommitsPerDay: []models.DayCount{
				{Date: "2024-06-13", Count: 3},
				{Date: "2024-06-14", Count: 8},
				{Date: "2024-06-15", Count: 2},
			},
		},
	}
}

func TestRenderingIsIdempotent(t *testing.T) {
	m := sampleMetrics()
	history := models.History{MonthlySnapshots: []models.MonthlySnapshot{
		{Month: "2024-06", TotalCommits: 250},
		{Month: "2024-05", TotalCommits: 200},
	}}

	first := testRenderer().StatsHero(m, history)
	second := testRenderer().StatsHero(m, history)

	assert.Equal(t, first, second, "same input and clock must produce identical bytes")
}

func TestStatsHeroDimensionsAndTier(t *testing.T) {
	out := testRenderer().StatsHero(sampleMetrics(), models.History{})

	assert.Contains(t, out, `<svg width="1200" height="320"`)
	// score = 250*2 + 12*5 + 5*3 + 30*4 = 695 → Expert
	assert.Contains(t, out, "Expert")
	assert.Contains(t, out, "250")
}

func TestLanguageChartDimensions(t *testing.T) {
	out := testRenderer().LanguageChart(sampleMetrics())

	assert.Contains(t, out, `<svg width="1200" height="500"`)
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "#00ADD8", "language palette color applied")
}

func TestLanguageDonutEmptyMetricsStillRenders(t *testing.T) {
	out := testRenderer().LanguageDonut(models.Metrics{})

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.NotContains(t, out, "NaN")
}

func TestDonutSliceLargeArcFlag(t *testing.T) {
	small := donutSlice(100, 100, 50, 80, -90, 120)
	large := donutSlice(100, 100, 50, 80, -90, 270)

	assert.Contains(t, small, " 0 0 1 ", "slices up to 180 degrees use the small arc")
	assert.Contains(t, large, " 0 1 1 ", "slices over 180 degrees set the large-arc flag")
}

func TestActivityColorBands(t *testing.T) {
	r := testRenderer()
	c := r.theme.Colors

	testCases := []struct {
		name    string
		count   int
		max     int
		color   string
		opacity float64
	}{
		{"Zero commits", 0, 10, c.Border, 0.2},
		{"Low band", 1, 10, c.Accent, 0.4},
		{"Medium band", 3, 10, c.Accent, 0.6},
		{"High band", 6, 10, c.Success, 0.7},
		{"Peak band", 9, 10, c.Success, 1.0},
		{"Exactly at peak boundary", 8, 10, c.Success, 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			color, opacity := r.activityColor(tc.count, tc.max)
			assert.Equal(t, tc.color, color)
			assert.InDelta(t, tc.opacity, opacity, 0.001)
		})
	}
}

func TestActivityCalendarGrid(t *testing.T) {
	out := testRenderer().ActivityCalendar(sampleMetrics())

	assert.Contains(t, out, `<svg width="1200" height="380"`)
	// 30 day cells plus 5 legend cells
	assert.GreaterOrEqual(t, strings.Count(out, "<rect"), 35)
	assert.Contains(t, out, "Jun 14", "peak day shown in metrics panel")
}

func TestStreakCardMilestone(t *testing.T) {
	out := testRenderer().StreakCard(sampleMetrics())

	assert.Contains(t, out, `<svg width="1200" height="280"`)
	// current streak 5 → next milestone 7
	assert.Contains(t, out, ">7 days</text>")
}

func TestNextMilestone(t *testing.T) {
	assert.Equal(t, 7, nextMilestone(0))
	assert.Equal(t, 7, nextMilestone(5))
	assert.Equal(t, 14, nextMilestone(7))
	assert.Equal(t, 365, nextMilestone(200))
	assert.Equal(t, 365, nextMilestone(400))
}

func TestTierCard(t *testing.T) {
	out := testRenderer().TierCard(sampleMetrics())

	assert.Contains(t, out, `<svg width="450" height="240"`)
	assert.Contains(t, out, "695")
	assert.Contains(t, out, "Progress to Elite")
}

func TestPerformanceComparison(t *testing.T) {
	activity := models.DailyActivity{DailyStats: map[string][]models.ActivityDay{
		"2024-05": {{Date: "2024-05-01", Commits: 4}, {Date: "2024-05-02", Commits: 6}},
		"2024-06": {{Date: "2024-06-01", Commits: 10}, {Date: "2024-06-02", Commits: 5, PRs: 2}},
	}}

	out := testRenderer().PerformanceComparison(sampleMetrics(), activity, models.History{})

	assert.Contains(t, out, `<svg width="1200" height="450"`)
	assert.Contains(t, out, "May 2024")
	assert.Contains(t, out, "June 2024")
	assert.Contains(t, out, "Monthly Change")
	// current 15 vs previous 10 → +50.0%
	assert.Contains(t, out, "↑ 50.0%")
}

func TestPerformanceComparisonEmptyActivity(t *testing.T) {
	out := testRenderer().PerformanceComparison(models.Metrics{}, models.DailyActivity{}, models.History{})

	assert.Contains(t, out, "</svg>")
	assert.NotContains(t, out, "NaN")
}

func TestFeaturedProjectsEscapesText(t *testing.T) {
	projects := models.Projects{FeaturedProjects: []models.FeaturedProject{
		{
			Name:        "api<server>",
			Description: "Fast & simple",
			Language:    "Go",
			Stars:       7,
			Status:      "active",
			LastUpdated: "2024-06-14",
			URL:         "https://example.com/api",
		},
	}}

	out := testRenderer().FeaturedProjects(projects)

	assert.Contains(t, out, "api&lt;server&gt;")
	assert.Contains(t, out, "Fast &amp; simple")
	assert.NotContains(t, out, "api<server>")
	assert.Contains(t, out, "Updated Yesterday")
}

func TestRelativeUpdate(t *testing.T) {
	r := testRenderer()

	assert.Equal(t, "Today", r.relativeUpdate("2024-06-15"))
	assert.Equal(t, "Yesterday", r.relativeUpdate("2024-06-14"))
	assert.Equal(t, "10d ago", r.relativeUpdate("2024-06-05"))
	assert.Equal(t, "2mo ago", r.relativeUpdate("2024-04-10"))
	assert.Equal(t, "1y ago", r.relativeUpdate("2023-01-01"))
	assert.Equal(t, "Unknown", r.relativeUpdate("not-a-date"))
}

func TestCareerTimelineHeightGrowsWithRows(t *testing.T) {
	entry := models.CareerEntry{
		Type: models.EntryTypeWork, Title: "Engineer", Company: "Acme",
		DateStart: "2020-01", DateEnd: "2021-01",
	}

	oneRow := models.Career{ProfessionalTimeline: []models.CareerEntry{entry, entry, entry}}
	twoRows := models.Career{ProfessionalTimeline: []models.CareerEntry{entry, entry, entry, entry, entry}}

	r := testRenderer()
	outOne := r.CareerTimeline(oneRow)
	outTwo := r.CareerTimeline(twoRows)

	assert.Contains(t, outOne, `height="660"`)
	assert.Contains(t, outTwo, `height="940"`)
}

func TestCareerTimelineTotalExperience(t *testing.T) {
	c := models.Career{
		ProfessionalTimeline: []models.CareerEntry{
			{Type: models.EntryTypeWork, Title: "Dev", Company: "A", DateStart: "2020-01", DateEnd: "2021-12"},
			{Type: models.EntryTypeWork, Title: "Dev", Company: "B", DateStart: "2021-06", DateEnd: "2022-06"},
		},
		Certifications: []models.Certification{
			{Name: "Cloud Cert", Date: "2022-03", Show: true},
			{Name: "Hidden Cert", Date: "2022-04", Show: false},
		},
	}

	out := testRenderer().CareerTimeline(c)

	// Overlapping jobs merged: Jan 2020 - Jun 2022 = 2y 6m
	assert.Contains(t, out, "2y 6m")
	assert.Contains(t, out, "Cloud Cert")
	assert.NotContains(t, out, "Hidden Cert")
}

func TestCareerTimelineEmpty(t *testing.T) {
	out := testRenderer().CareerTimeline(models.Career{})

	assert.Contains(t, out, `height="400"`)
	assert.Contains(t, out, "Professional Journey")
}

func TestGoalsTracker(t *testing.T) {
	roadmap := models.Roadmap{Goals: []models.Goal{
		{Title: "Ship v1.0", Progress: 80, Deadline: "2024-06-30", Priority: "high"},
		{Title: "Write docs", Progress: 100, Deadline: "2024-12-31", Priority: "low"},
	}}

	out := testRenderer().GoalsTracker(roadmap)

	assert.Contains(t, out, `<svg width="1200" height="500"`)
	assert.Contains(t, out, "Ship v1.0")
	assert.Contains(t, out, "✓ COMPLETED")
	assert.Contains(t, out, "Nearly done")
	assert.Contains(t, out, "14 days left")
}

func TestLearningStatsSortsByLevel(t *testing.T) {
	roadmap := models.Roadmap{Tracks: []models.Track{
		{Name: "Backend", Icon: "⚙️", Color: "#3572A5", Skills: []models.Skill{
			{Name: "Python", Level: 75, Target: 90},
			{Name: "Go", Level: 90, Target: 95},
		}},
	}}

	out := testRenderer().LearningStats(roadmap)

	require.Contains(t, out, "Go")
	require.Contains(t, out, "Python")
	assert.Less(t, strings.Index(out, ">Go</text>"), strings.Index(out, ">Python</text>"), "higher level listed first")
	assert.Contains(t, out, "+15% to target")
	assert.Contains(t, out, "Go, Python")
}

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme("../../themes", "dark")
	require.NoError(t, err)

	assert.Equal(t, "dark", theme.Name)
	assert.Equal(t, "#0d1117", theme.Colors.Background)
	assert.Equal(t, "#58a6ff", theme.Colors.Accent)

	_, err = LoadTheme("../../themes", "missing")
	assert.Error(t, err)
}

func TestColorByKey(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, theme.Colors.Purple, theme.ColorByKey("purple"))
	assert.Equal(t, theme.Colors.Error, theme.ColorByKey("danger"))
	assert.Equal(t, theme.Colors.Accent, theme.ColorByKey("nonsense"), "unknown keys fall back to accent")
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt;c&gt; &quot;d&quot;", escape(`a & b <c> "d"`))
}
