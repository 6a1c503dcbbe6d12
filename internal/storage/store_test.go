package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadMetrics(t *testing.T) {
	store := NewStore(t.TempDir())

	metrics := models.Metrics{
		Username:     "octocat",
		TotalCommits: 42,
		TotalRepos:   7,
		Streak:       models.Streak{Current: 3, Longest: 9},
		TopLanguages: []models.LanguageCount{{Name: "Go", Count: 4}},
		LastUpdated:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.SaveMetrics(metrics))

	loaded, err := store.LoadMetrics()
	require.NoError(t, err)
	assert.Equal(t, metrics, loaded)
}

func TestLoadMetricsMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.LoadMetrics()
	assert.Error(t, err)
}

func TestSaveCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewStore(dir)

	require.NoError(t, store.SaveMetrics(models.Metrics{Username: "octocat"}))

	_, err := os.Stat(filepath.Join(dir, MetricsFile))
	assert.NoError(t, err)
}

func TestUpdateHistoryAppendsNewMonth(t *testing.T) {
	store := NewStore(t.TempDir())
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	history, err := store.UpdateHistory(models.Metrics{TotalCommits: 10}, now)
	require.NoError(t, err)

	require.Len(t, history.MonthlySnapshots, 1)
	assert.Equal(t, "2024-06", history.MonthlySnapshots[0].Month)
	assert.Equal(t, 10, history.MonthlySnapshots[0].TotalCommits)
}

func TestUpdateHistoryReplacesCurrentMonth(t *testing.T) {
	store := NewStore(t.TempDir())
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	_, err := store.UpdateHistory(models.Metrics{TotalCommits: 10}, now)
	require.NoError(t, err)

	// A re-run in the same month replaces the snapshot instead of stacking
	history, err := store.UpdateHistory(models.Metrics{TotalCommits: 25}, now.Add(2*time.Hour))
	require.NoError(t, err)

	require.Len(t, history.MonthlySnapshots, 1)
	assert.Equal(t, 25, history.MonthlySnapshots[0].TotalCommits)
}

func TestUpdateHistoryKeepsTwelveMonthsNewestFirst(t *testing.T) {
	store := NewStore(t.TempDir())

	start := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	var history models.History
	var err error
	for i := 0; i < 15; i++ {
		history, err = store.UpdateHistory(models.Metrics{TotalCommits: i}, start.AddDate(0, i, 0))
		require.NoError(t, err)
	}

	require.Len(t, history.MonthlySnapshots, HistoryLimit)
	assert.Equal(t, "2024-03", history.MonthlySnapshots[0].Month)
	assert.Equal(t, "2023-04", history.MonthlySnapshots[HistoryLimit-1].Month)
	for i := 1; i < len(history.MonthlySnapshots); i++ {
		assert.Greater(t, history.MonthlySnapshots[i-1].Month, history.MonthlySnapshots[i].Month)
	}
}

func TestLoadHistoryMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())
	assert.Empty(t, store.LoadHistory().MonthlySnapshots)
}

func TestLoadDailyActivityDefaults(t *testing.T) {
	store := NewStore(t.TempDir())

	activity := store.LoadDailyActivity()
	assert.NotNil(t, activity.DailyStats)
	assert.Empty(t, activity.DailyStats)
}

func TestLoadCareerDefaults(t *testing.T) {
	store := NewStore(t.TempDir())

	career := store.LoadCareer()
	assert.Empty(t, career.ProfessionalTimeline)
	assert.Equal(t, "year_only", career.Meta.ShowDates)
}

func TestLoadRoadmapDefault(t *testing.T) {
	store := NewStore(t.TempDir())

	roadmap := store.LoadRoadmap()
	assert.Len(t, roadmap.Tracks, 3)
	assert.Len(t, roadmap.Goals, 3)
}

func TestLoadRoadmapFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `{"tracks":[{"name":"Systems","icon":"🔧","color":"#00ADD8","skills":[{"name":"Go","level":70,"target":90}]}],"goals":[]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, RoadmapFile), []byte(content), 0o644))

	roadmap := NewStore(dir).LoadRoadmap()

	require.Len(t, roadmap.Tracks, 1)
	assert.Equal(t, "Systems", roadmap.Tracks[0].Name)
}

func TestCorruptFileReturnsError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetricsFile), []byte("{not json"), 0o644))

	_, err := NewStore(dir).LoadMetrics()
	assert.Error(t, err)
}

func TestSaveReport(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	report := models.NewCollectionReport("octocat")
	report.Record("repo-a", models.OutcomeSuccess, "")
	report.Record("repo-b", models.OutcomeFailed, fmt.Sprintf("HTTP %d", 502))

	require.NoError(t, store.SaveReport(report))

	data, err := os.ReadFile(filepath.Join(dir, ReportFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "repo-b")
	assert.Contains(t, string(data), "HTTP 502")
}
