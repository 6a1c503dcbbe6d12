package metrics

import (
	"testing"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/models"
	"github.com/stretchr/testify/assert"
)

func commitOn(repo, date string) models.Commit {
	d, _ := time.Parse("2006-01-02", date)
	return models.Commit{Repo: repo, SHA: date + repo, Date: d}
}

func TestStreak(t *testing.T) {
	now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		dates    []string
		expected models.Streak
	}{
		{
			name:     "No commits",
			dates:    nil,
			expected: models.Streak{Current: 0, Longest: 0},
		},
		{
			name:     "Run earlier plus commit today",
			dates:    []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-10"},
			expected: models.Streak{Current: 1, Longest: 3},
		},
		{
			name:     "Single stale date",
			dates:    []string{"2024-01-02"},
			expected: models.Streak{Current: 0, Longest: 1},
		},
		{
			name:     "Streak alive via yesterday grace day",
			dates:    []string{"2024-01-07", "2024-01-08", "2024-01-09"},
			expected: models.Streak{Current: 3, Longest: 3},
		},
		{
			name:     "Streak broken two days ago",
			dates:    []string{"2024-01-06", "2024-01-07", "2024-01-08"},
			expected: models.Streak{Current: 0, Longest: 3},
		},
		{
			name:     "Duplicate dates collapse",
			dates:    []string{"2024-01-09", "2024-01-09", "2024-01-10", "2024-01-10"},
			expected: models.Streak{Current: 2, Longest: 2},
		},
		{
			name:     "Longest run in the past beats current",
			dates:    []string{"2023-12-01", "2023-12-02", "2023-12-03", "2023-12-04", "2024-01-09", "2024-01-10"},
			expected: models.Streak{Current: 2, Longest: 4},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var commits []models.Commit
			for _, d := range tc.dates {
				commits = append(commits, commitOn("repo", d))
			}
			p := NewProcessor(nil, commits, nil, nil, now)
			assert.Equal(t, tc.expected, p.Streak())
		})
	}
}

func TestStreakLongestAtLeastOneWhenActive(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	p := NewProcessor(nil, []models.Commit{commitOn("r", "2023-01-15")}, nil, nil, now)
	streak := p.Streak()
	assert.Equal(t, 0, streak.Current, "stale activity must not count as current")
	assert.GreaterOrEqual(t, streak.Longest, 1)
}

func TestDailyStats(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	commits := []models.Commit{
		commitOn("a", "2024-01-02"),
		commitOn("a", "2024-01-02"),
		commitOn("b", "2024-01-01"),
	}

	daily := NewProcessor(nil, commits, nil, nil, now).DailyStats()

	assert.Equal(t, 2, daily.TotalDaysActive)
	assert.Equal(t, 1.5, daily.AverageCommits)
	assert.Equal(t, []models.DayCount{
		{Date: "2024-01-01", Count: 1},
		{Date: "2024-01-02", Count: 2},
	}, daily.CommitsPerDay)
}

func TestDailyStatsEmpty(t *testing.T) {
	daily := NewProcessor(nil, nil, nil, nil, time.Now()).DailyStats()
	assert.Equal(t, 0, daily.TotalDaysActive)
	assert.Equal(t, 0.0, daily.AverageCommits)
	assert.Empty(t, daily.CommitsPerDay)
}

func TestWeeklyStats(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	closed := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	prs := []models.PullRequest{
		{Repo: "a", Number: 1, CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{Repo: "a", Number: 2, CreatedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{Repo: "b", Number: 3, CreatedAt: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)},
	}
	issues := []models.Issue{
		{Repo: "a", Number: 1, ClosedAt: &closed},
		{Repo: "a", Number: 2}, // still open, not counted
	}

	weekly := NewProcessor(nil, nil, prs, issues, now).WeeklyStats()

	assert.Equal(t, []models.WeekCount{
		{Week: "2024-W01", Count: 2},
		{Week: "2024-W02", Count: 1},
	}, weekly.PRsPerWeek)
	assert.Equal(t, []models.WeekCount{{Week: "2024-W01", Count: 1}}, weekly.IssuesClosedPerWeek)
}

func TestMonthlyStats(t *testing.T) {
	now := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	commits := []models.Commit{
		commitOn("a", "2024-02-01"),
		commitOn("a", "2024-01-31"), // previous month
	}
	prs := []models.PullRequest{
		{Repo: "a", CreatedAt: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
	}

	monthly := NewProcessor(nil, commits, prs, nil, now).MonthlyStats()

	assert.Equal(t, "2024-02", monthly.Month)
	assert.Equal(t, 1, monthly.CommitsThisMonth)
	assert.Equal(t, 1, monthly.PRsThisMonth)
	assert.Equal(t, 0, monthly.IssuesThisMonth)
}

func TestTopLanguages(t *testing.T) {
	golang := "Go"
	python := "Python"
	repos := []models.Repository{
		{Name: "a", Language: &golang},
		{Name: "b", Language: &golang},
		{Name: "c", Language: &python},
		{Name: "d"}, // no language, ignored
	}

	langs := NewProcessor(repos, nil, nil, nil, time.Now()).TopLanguages(10)

	assert.Equal(t, []models.LanguageCount{
		{Name: "Go", Count: 2},
		{Name: "Python", Count: 1},
	}, langs)
}

func TestTopLanguagesTieBreakByName(t *testing.T) {
	ruby := "Ruby"
	crystal := "Crystal"
	repos := []models.Repository{
		{Name: "a", Language: &ruby},
		{Name: "b", Language: &crystal},
	}

	langs := NewProcessor(repos, nil, nil, nil, time.Now()).TopLanguages(10)

	assert.Equal(t, "Crystal", langs[0].Name)
	assert.Equal(t, "Ruby", langs[1].Name)
}

func TestRankLanguagesByBytes(t *testing.T) {
	counts := map[string]int{"Go": 2, "Python": 5, "Shell": 1}
	bytes := map[string]int64{"Go": 500_000, "Python": 100_000, "Shell": 2_000}

	langs := RankLanguagesByBytes(counts, bytes, 2)

	assert.Len(t, langs, 2)
	assert.Equal(t, "Go", langs[0].Name)
	assert.Equal(t, "Python", langs[1].Name)
}

func TestComputeTier(t *testing.T) {
	testCases := []struct {
		name     string
		metrics  models.Metrics
		expected string
	}{
		{
			name:     "Empty profile is Beginner",
			metrics:  models.Metrics{},
			expected: "Beginner",
		},
		{
			name: "Intermediate threshold",
			// 50*2 + 10*5 = 150
			metrics:  models.Metrics{TotalCommits: 50, TotalRepos: 10},
			expected: "Intermediate",
		},
		{
			name: "Elite with heavy activity",
			// 400*2 + 20*5 + 10*3 + 30*4 = 1050
			metrics:  models.Metrics{TotalCommits: 400, TotalRepos: 20, Streak: models.Streak{Current: 10}, TotalPRs: 30},
			expected: "Elite",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tier := ComputeTier(tc.metrics)
			assert.Equal(t, tc.expected, tier.Name)
		})
	}
}

func TestTierProgress(t *testing.T) {
	tier := ComputeTier(models.Metrics{TotalCommits: 50, TotalRepos: 10}) // score 150
	assert.Equal(t, "Intermediate", tier.Name)
	assert.InDelta(t, 150.0/350.0*100, tier.Progress(), 0.001)

	elite := ComputeTier(models.Metrics{TotalCommits: 1000})
	assert.Equal(t, 100.0, elite.Progress())
}
