package metrics

import (
	"testing"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailyActivity(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	periodStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	commits := []models.Commit{
		{Repo: "a", Date: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)},
		{Repo: "a", Date: time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC)},
		{Repo: "b", Date: time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)},
	}
	prs := []models.PullRequest{
		{Repo: "a", CreatedAt: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)},
	}
	issues := []models.Issue{
		{Repo: "b", CreatedAt: time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)},
	}

	activity := BuildDailyActivity(commits, prs, issues, periodStart, now)

	june := activity.DailyStats["2024-06"]
	require.Len(t, june, 3, "only days with activity are recorded")

	assert.Equal(t, models.ActivityDay{Date: "2024-06-03", Commits: 2, PRs: 1}, june[0])
	assert.Equal(t, models.ActivityDay{Date: "2024-06-10", Commits: 1}, june[1])
	assert.Equal(t, models.ActivityDay{Date: "2024-06-12", Issues: 1}, june[2])

	assert.Equal(t, 3, activity.Metadata.DaysCollected)
	assert.Equal(t, "2024-06-01", activity.Metadata.PeriodStart)
	assert.Equal(t, "2024-06-15", activity.Metadata.PeriodEnd)
}

func TestBuildDailyActivityEmpty(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	activity := BuildDailyActivity(nil, nil, nil, now, now)

	assert.Empty(t, activity.DailyStats)
	assert.Zero(t, activity.Metadata.DaysCollected)
}

func TestBuildDailyActivityDaysOrderedWithinMonth(t *testing.T) {
	now := time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)
	commits := []models.Commit{
		{Date: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
	}

	activity := BuildDailyActivity(commits, nil, nil, now.AddDate(0, -1, 0), now)

	june := activity.DailyStats["2024-06"]
	require.Len(t, june, 2)
	assert.Equal(t, "2024-06-05", june[0].Date)
	assert.Equal(t, "2024-06-20", june[1].Date)
	require.Len(t, activity.DailyStats["2024-07"], 1)
}
